package download

import "context"

// Builder assembles a Handler from optional per-point callbacks. The zero
// value is usable; registration methods return the builder for chaining.
//
// A Builder is only for the configuration phase and is not safe for
// concurrent use. Build snapshots the current registrations, so the builder
// may be mutated or reused afterwards without affecting handlers already
// built from it.
type Builder struct {
	canDownload    CanDownloadFunc
	beforeDownload BeforeDownloadFunc
	updated        DownloadUpdatedFunc
}

// NewBuilder returns an empty Builder. A handler built from it performs the
// default action at every point: allow downloads, decline destination
// handling, ignore updates.
func NewBuilder() *Builder {
	return &Builder{}
}

// OnCanDownload registers fn for the can-download point, replacing any prior
// registration. A nil fn clears it, restoring the default (allow).
func (b *Builder) OnCanDownload(fn CanDownloadFunc) *Builder {
	b.canDownload = fn
	return b
}

// OnBeforeDownload registers fn for the destination-decision point,
// replacing any prior registration. A nil fn clears it, restoring the
// default (decline, engine handles the download its own way).
func (b *Builder) OnBeforeDownload(fn BeforeDownloadFunc) *Builder {
	b.beforeDownload = fn
	return b
}

// OnDownloadUpdated registers fn for state-change notifications, replacing
// any prior registration. A nil fn clears it, restoring the default (no-op).
func (b *Builder) OnDownloadUpdated(fn DownloadUpdatedFunc) *Builder {
	b.updated = fn
	return b
}

// Build returns a Handler backed by the registrations present at the moment
// of the call. The result is immutable and safe for concurrent invocation.
func (b *Builder) Build() Handler {
	return &callbackHandler{
		canDownload:    b.canDownload,
		beforeDownload: b.beforeDownload,
		updated:        b.updated,
	}
}

// callbackHandler dispatches each contract method to its registered callback
// or falls back to the point's fixed default. It holds no state beyond the
// callbacks themselves.
type callbackHandler struct {
	canDownload    CanDownloadFunc
	beforeDownload BeforeDownloadFunc
	updated        DownloadUpdatedFunc
}

func (h *callbackHandler) CanDownload(ctx context.Context, url, requestMethod string) bool {
	if h.canDownload == nil {
		return true
	}
	return h.canDownload(ctx, url, requestMethod)
}

func (h *callbackHandler) OnBeforeDownload(ctx context.Context, item Item, callback BeforeDownloadCallback) bool {
	if h.beforeDownload == nil {
		return false
	}
	return h.beforeDownload(ctx, item, callback)
}

func (h *callbackHandler) OnDownloadUpdated(ctx context.Context, item Item) {
	if h.updated == nil {
		return
	}
	h.updated(ctx, item)
}
