package doctext

import "context"

// Extractor pulls plain text out of an uploaded resume document.
type Extractor interface {
	// ExtractText returns the document's text. Fails with an error when the
	// document is unreadable or the format is unsupported.
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}
