package grrs

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
)

// SearchStats tracks what a search read and found
type SearchStats struct {
	LinesScanned int64
	BytesScanned int64
	MatchesFound int64
	MemoryMapped bool
	Encoding     string
	Duration     time.Duration
	StartTime    time.Time
	EndTime      time.Time
}

// SearchResults contains collected matches and metadata
type SearchResults struct {
	Matches []Match
	Stats   SearchStats
	Query   string
}

// HasMatches returns true if any matches were found
func (r *SearchResults) HasMatches() bool {
	return len(r.Matches) > 0
}

// Count returns the number of matches
func (r *SearchResults) Count() int {
	return len(r.Matches)
}

// Grep searches the file at path for lines containing pattern and writes a
// record for each match, either to the configured output or, with
// WithOutfile, to a freshly purged output file.
//
// Errors are *Error values: KindValidation for an empty or blank pattern,
// KindInput when path cannot be read, KindOutput when the output cannot be
// purged or written.
func Grep(ctx context.Context, pattern, path string, opts ...Option) (*SearchStats, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	log := options.logger.With(zap.String("pattern", pattern), zap.String("path", path))

	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	dec, encName, err := newDecoder(options.encoding)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Msg: "invalid encoding", Err: err}
	}

	in, err := openInput(path, options.mmapThreshold)
	if err != nil {
		return nil, inputError(path, err)
	}
	defer in.Close()

	out, err := openSink(options)
	if err != nil {
		return nil, err
	}

	if options.outfile != "" {
		log = log.With(zap.String("outfile", options.outfile))
	}
	log.Info("searching", zap.Bool("mmap", in.mapped), zap.String("encoding", encName))

	stats := &SearchStats{
		StartTime:    time.Now(),
		MemoryMapped: in.mapped,
		Encoding:     encName,
	}
	scanErr := scanLines(ctx, path, in.reader(), dec, options.bufferSize, pattern, stats, func(m Match) error {
		log.Debug("match", zap.Int("line", m.Line))
		if _, err := m.WriteTo(out.w); err != nil {
			return out.fail(err)
		}
		return nil
	})
	closeErr := out.close()

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	if scanErr != nil {
		return stats, scanErr
	}
	if closeErr != nil {
		return stats, closeErr
	}
	log.Info("search complete",
		zap.Int64("lines", stats.LinesScanned),
		zap.Int64("bytes", stats.BytesScanned),
		zap.Int64("matches", stats.MatchesFound),
		zap.Duration("duration", stats.Duration))
	return stats, nil
}

// Find searches the file at path and returns the matching lines instead of
// writing them. Output options are ignored.
func Find(ctx context.Context, pattern, path string, opts ...Option) (*SearchResults, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	dec, encName, err := newDecoder(options.encoding)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Msg: "invalid encoding", Err: err}
	}

	in, err := openInput(path, options.mmapThreshold)
	if err != nil {
		return nil, inputError(path, err)
	}
	defer in.Close()

	results := &SearchResults{
		Query: pattern,
		Stats: SearchStats{StartTime: time.Now(), MemoryMapped: in.mapped, Encoding: encName},
	}
	err = scanLines(ctx, path, in.reader(), dec, options.bufferSize, pattern, &results.Stats, func(m Match) error {
		results.Matches = append(results.Matches, m)
		return nil
	})
	results.Stats.EndTime = time.Now()
	results.Stats.Duration = results.Stats.EndTime.Sub(results.Stats.StartTime)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// scanLines numbers the lines of r from 1 and calls emit for each match.
func scanLines(ctx context.Context, path string, r io.Reader, dec transform.Transformer, bufSize int, pattern string, stats *SearchStats, emit func(Match) error) error {
	br := bufio.NewReaderSize(transform.NewReader(r, dec), bufSize)
	num := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			num++
			stats.LinesScanned++
			stats.BytesScanned += int64(len(line))
			for _, m := range Matches(line, num, pattern) {
				stats.MatchesFound++
				if err := emit(m); err != nil {
					return err
				}
			}
		}

		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return inputError(path, readErr)
		}
	}
}

// sink is the destination of match records for one Grep run.
type sink struct {
	w     io.Writer
	path  string
	close func() error
}

// openSink purges and opens the output file, or buffers the output writer.
func openSink(options *searchOptions) (*sink, error) {
	if options.outfile == "" {
		bw := bufio.NewWriterSize(options.output, options.bufferSize)
		s := &sink{w: bw}
		s.close = func() error {
			if err := bw.Flush(); err != nil {
				return s.fail(err)
			}
			return nil
		}
		return s, nil
	}

	path := options.outfile
	if err := PurgeFile(path); err != nil {
		return nil, outputError(path, "create", err)
	}
	mw, err := OpenMatchWriter(path)
	if err != nil {
		return nil, outputError(path, "create", err)
	}
	s := &sink{w: mw, path: path}
	s.close = func() error {
		if err := mw.Close(); err != nil {
			return s.fail(err)
		}
		return nil
	}
	return s, nil
}

func (s *sink) fail(err error) error {
	if s.path == "" {
		return &Error{Kind: KindOutput, Msg: "could not write output", Err: errors.WithStack(err)}
	}
	return outputError(s.path, "write", err)
}
