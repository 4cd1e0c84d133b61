package download

import "context"

// BeforeDownloadCallback is the engine-supplied continuation for a pending
// destination decision. Code that calls Continue owns the callback and must
// call Release exactly once afterwards; a handler that leaves the callback
// untouched leaves ownership with the engine.
type BeforeDownloadCallback interface {
	// Continue resumes the download. path is the absolute destination path,
	// or empty to let the engine pick one. showDialog asks the engine to
	// present its native save-location dialog first.
	Continue(path string, showDialog bool)
	// Release frees the engine-side resources backing the continuation.
	Release()
}

// Handler is the download contract an embedding application hands to the
// engine. The engine invokes the methods at its own discretion, on threads
// of its choosing; no ordering between them is guaranteed by this package.
type Handler interface {
	// CanDownload is asked before a download is allowed to begin.
	// Returning false blocks it.
	CanDownload(ctx context.Context, url, requestMethod string) bool

	// OnBeforeDownload is invoked when the engine needs a destination
	// decision for item. Returning true means the handler took over the
	// decision (typically by signalling callback); returning false leaves
	// the engine's default handling in place.
	OnBeforeDownload(ctx context.Context, item Item, callback BeforeDownloadCallback) bool

	// OnDownloadUpdated is notified whenever the download's state changes,
	// including the terminal transition to complete or cancelled.
	OnDownloadUpdated(ctx context.Context, item Item)
}

// CanDownloadFunc decides whether a download may begin.
type CanDownloadFunc func(ctx context.Context, url, requestMethod string) bool

// BeforeDownloadFunc decides how a pending download proceeds.
type BeforeDownloadFunc func(ctx context.Context, item Item, callback BeforeDownloadCallback) bool

// DownloadUpdatedFunc observes download state changes.
type DownloadUpdatedFunc func(ctx context.Context, item Item)
