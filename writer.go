package grrs

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// WriteMatches appends the records of matching lines in content to the file
// at path, creating it if needed. The file is opened and closed on every call.
func WriteMatches(content string, num int, pattern, path string) (err error) {
	w, err := OpenMatchWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return w.WriteMatches(content, num, pattern)
}

// MatchWriter appends match records to a single file handle held open for
// the duration of a run.
type MatchWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

// OpenMatchWriter opens path for appending, creating it if absent.
func OpenMatchWriter(path string) (*MatchWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &MatchWriter{path: path, file: f, buf: bufio.NewWriter(f)}, nil
}

// Path returns the file the writer appends to.
func (w *MatchWriter) Path() string { return w.path }

// WriteMatches appends the records of matching lines in content.
func (w *MatchWriter) WriteMatches(content string, num int, pattern string) error {
	return PrintMatches(content, num, pattern, w.buf)
}

// Write implements io.Writer so the writer can be used as a plain sink.
func (w *MatchWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes buffered records and closes the file.
func (w *MatchWriter) Close() error {
	ferr := w.buf.Flush()
	cerr := w.file.Close()
	if ferr != nil {
		return errors.Wrapf(ferr, "flush %s", w.path)
	}
	return errors.WithStack(cerr)
}
