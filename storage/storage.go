// Package storage models the object-storage collaborator behind quote
// attachments and gallery artwork: files go in, public URLs come out.
package storage

import (
	"context"
	"io"
)

// Uploader stores a file under a destination folder and returns its public
// URL. Implementations disambiguate stored names themselves; the original
// filename only contributes its extension.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error)
}
