package download

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/avasse/grabby/internal/logging"
)

// UseFolder builds a Handler that saves every download into dir without
// prompting. The destination is dir joined with the sanitized
// engine-suggested filename. onUpdated may be nil.
func UseFolder(dir string, onUpdated DownloadUpdatedFunc) Handler {
	return NewBuilder().
		OnBeforeDownload(func(ctx context.Context, item Item, callback BeforeDownloadCallback) bool {
			defer callback.Release()

			safeName := sanitizeFilename(item.SuggestedFilename)
			destPath := filepath.Join(dir, safeName)

			log := logging.FromContext(ctx)
			log.Debug().
				Str("suggested", item.SuggestedFilename).
				Str("sanitized", safeName).
				Str("destination", destPath).
				Msg("continuing download without prompt")

			callback.Continue(destPath, false)
			return true
		}).
		OnDownloadUpdated(onUpdated).
		Build()
}

// PromptUser builds a Handler that defers every destination decision to the
// engine's native save-location dialog. onUpdated may be nil.
func PromptUser(onUpdated DownloadUpdatedFunc) Handler {
	return NewBuilder().
		OnBeforeDownload(func(ctx context.Context, item Item, callback BeforeDownloadCallback) bool {
			defer callback.Release()

			logging.FromContext(ctx).Debug().
				Str("suggested", item.SuggestedFilename).
				Msg("deferring to engine save dialog")

			callback.Continue("", true)
			return true
		}).
		OnDownloadUpdated(onUpdated).
		Build()
}

// sanitizeFilename reduces an engine-suggested filename to a safe base name,
// preventing path traversal through the suggestion.
func sanitizeFilename(name string) string {
	// filepath.Base only splits on the OS-native separator, so normalize
	// Windows-style separators first.
	name = strings.ReplaceAll(name, "\\", "/")

	clean := filepath.Base(name)
	if clean == "." || clean == ".." || clean == "" || clean == "/" {
		return "download"
	}
	return clean
}
