package grrs

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// inputFile is an opened search input, memory-mapped when large enough.
type inputFile struct {
	file   *os.File
	data   []byte
	size   int64
	mapped bool
}

// openInput opens path for reading. Regular files of at least threshold
// bytes are memory-mapped; mapping failures fall back to plain reads.
func openInput(path string, threshold int64) (*inputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.WithStack(err)
	}

	in := &inputFile{file: f, size: stat.Size()}
	if stat.Mode().IsRegular() && in.size > 0 && in.size >= threshold {
		if data, err := mapFile(f, in.size); err == nil {
			in.data = data
			in.mapped = true
		}
	}
	return in, nil
}

// reader returns the byte stream of the input.
func (in *inputFile) reader() io.Reader {
	if in.mapped {
		return bytes.NewReader(in.data)
	}
	return in.file
}

// Close releases the mapping, if any, and the file handle.
func (in *inputFile) Close() error {
	var unmapErr error
	if in.mapped {
		unmapErr = unmapFile(in.data)
		in.data = nil
		in.mapped = false
	}
	if err := in.file.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(unmapErr)
}
