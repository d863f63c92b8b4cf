package grrs

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// PurgeFile deletes the file at path if it exists. Call it before appending a
// fresh run's matches so output does not accumulate across runs.
func PurgeFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
