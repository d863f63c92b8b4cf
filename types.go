package grrs

import (
	"io"
	"strconv"
	"strings"
)

// Match represents a single matching line
type Match struct {
	Line    int    // Line number (1-indexed)
	Content string // Content of the matching line, without its line ending
}

// String renders the match record without a trailing newline.
func (m Match) String() string {
	return "LINE# " + strconv.Itoa(m.Line) + ": " + m.Content
}

// WriteTo writes the match record followed by a newline.
func (m Match) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String()+"\n")
	return int64(n), err
}

// lines returns the lines of content with "\n" and "\r\n" endings removed.
// A trailing newline does not produce an empty final line.
func lines(content string) []string {
	var out []string
	for line := range strings.Lines(content) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		out = append(out, line)
	}
	return out
}
