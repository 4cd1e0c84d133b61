package download

import "time"

// Item is an immutable snapshot of a single engine download. The engine
// passes a fresh snapshot with every handler invocation; fields reflect the
// download's state at that instant and never change afterwards.
type Item struct {
	// ID identifies the download for the lifetime of the engine session.
	ID uint32
	// URL is the current download URL, after any redirects.
	URL string
	// OriginalURL is the URL the download was initiated with.
	OriginalURL string
	// SuggestedFilename is the engine's proposed name for the file, derived
	// from the URL or the Content-Disposition header. It is untrusted input.
	SuggestedFilename string
	// ContentDisposition is the raw Content-Disposition header, if any.
	ContentDisposition string
	// MimeType is the reported MIME type, if any.
	MimeType string
	// FullPath is the destination path once one has been decided, empty before.
	FullPath string

	TotalBytes    int64 // -1 when the size is unknown
	ReceivedBytes int64
	CurrentSpeed  int64 // bytes per second
	// PercentComplete is 0-100, or -1 when TotalBytes is unknown.
	PercentComplete int

	StartTime time.Time
	EndTime   time.Time // zero until the download settles

	IsInProgress bool
	IsComplete   bool
	IsCancelled  bool
}

// State returns a short human-readable description of the item's phase.
func (i Item) State() string {
	switch {
	case i.IsCancelled:
		return "cancelled"
	case i.IsComplete:
		return "complete"
	case i.IsInProgress:
		return "in progress"
	default:
		return "pending"
	}
}
