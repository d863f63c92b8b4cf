package grrs

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Option represents a functional option for configuring a search
type Option func(*searchOptions)

// searchOptions holds the configuration for a search operation
type searchOptions struct {
	output        io.Writer
	outfile       string
	logger        *zap.Logger
	encoding      string
	mmapThreshold int64
	bufferSize    int
}

// defaultOptions returns the default search options
func defaultOptions() *searchOptions {
	return &searchOptions{
		output:        os.Stdout,
		logger:        zap.NewNop(),
		mmapThreshold: 64 * 1024 * 1024, // 64MB
		bufferSize:    64 * 1024,        // 64KB
	}
}

// Output Options

// WithOutput sets the writer matches are printed to when no output file is
// configured. The default is standard output.
func WithOutput(w io.Writer) Option {
	return func(opts *searchOptions) {
		if w != nil {
			opts.output = w
		}
	}
}

// WithOutfile appends matches to the file at path instead of printing them.
// The file is purged once before the search starts.
func WithOutfile(path string) Option {
	return func(opts *searchOptions) {
		opts.outfile = path
	}
}

// WithLogger sets the logger used to report search progress
func WithLogger(logger *zap.Logger) Option {
	return func(opts *searchOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// Input Options

// WithEncoding sets the text encoding of the input by WHATWG label, e.g.
// "latin1" or "utf-16le". The default sniffs a byte order mark and otherwise
// passes bytes through unchanged.
func WithEncoding(name string) Option {
	return func(opts *searchOptions) {
		opts.encoding = name
	}
}

// WithMemoryMapThreshold sets the input size in bytes at which the file is
// memory-mapped instead of read through a buffer.
func WithMemoryMapThreshold(sizeBytes int64) Option {
	return func(opts *searchOptions) {
		if sizeBytes > 0 {
			opts.mmapThreshold = sizeBytes
		}
	}
}

// WithBufferSize sets the I/O buffer size in bytes
func WithBufferSize(size int) Option {
	return func(opts *searchOptions) {
		if size > 0 {
			opts.bufferSize = size
		}
	}
}
