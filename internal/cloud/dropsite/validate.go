package dropsite

import (
	"fmt"
	"os"
)

// MaxUploadSize is the largest file, in bytes, the dropsite server accepts for upload.
// The size is checked client-side to avoid wasting a round trip on a rejected upload.
const MaxUploadSize = 5 * 1024 * 1024

// ErrFileNotFound occurs when the local file selected for upload does not exist
type ErrFileNotFound struct {
	Path string
}

func (err ErrFileNotFound) Error() string {
	return fmt.Sprintf("no file found at %q", err.Path)
}

// ErrFileTooLarge occurs when the local file selected for upload exceeds MaxUploadSize
type ErrFileTooLarge struct {
	Path string
	Size int64
}

func (err ErrFileTooLarge) Error() string {
	return fmt.Sprintf("%q is %d bytes, exceeding the %d byte upload limit", err.Path, err.Size, MaxUploadSize)
}

// ValidateUpload checks that the file at the provided local path
// exists and is within the server's upload size limit
func ValidateUpload(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound{path}
		}
		return err
	}

	if info.IsDir() {
		return ErrFileNotFound{path}
	}

	if info.Size() > MaxUploadSize {
		return ErrFileTooLarge{path, info.Size()}
	}
	return nil
}
