package quotes

import (
	"errors"
	"fmt"
)

// MaxFileSize caps quote attachments at 1 MiB. A file of exactly this size
// is accepted; one byte more is not.
const MaxFileSize = 1 << 20

// ErrInvalidFile marks a pre-flight rejection of an attachment. Handlers map
// it to a 400; it always fires before any storage call.
var ErrInvalidFile = errors.New("invalid attachment")

// ValidateFileName rejects names containing CJK ideographs (U+4E00 to
// U+9FA5), which the storage backend's key encoding cannot carry.
func ValidateFileName(name string) error {
	for _, r := range name {
		if r >= 0x4E00 && r <= 0x9FA5 {
			return fmt.Errorf("%w: file name %q contains unsupported characters", ErrInvalidFile, name)
		}
	}
	return nil
}

func ValidateFileSize(name string, size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("%w: file %q exceeds the %d byte limit", ErrInvalidFile, name, MaxFileSize)
	}
	return nil
}
