package grrs

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Matches returns a Match for every line of content containing pattern, all
// numbered num. An empty pattern matches every line.
func Matches(content string, num int, pattern string) []Match {
	var matches []Match
	for _, line := range lines(content) {
		if strings.Contains(line, pattern) {
			matches = append(matches, Match{Line: num, Content: line})
		}
	}
	return matches
}

// PrintMatches writes the record of every line of content containing pattern
// to w, numbered num.
func PrintMatches(content string, num int, pattern string, w io.Writer) error {
	for _, m := range Matches(content, num, pattern) {
		if _, err := m.WriteTo(w); err != nil {
			return errors.Wrap(err, "write match")
		}
	}
	return nil
}

// ValidatePattern rejects patterns that are empty or only whitespace.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return ErrEmptyPattern
	}
	return nil
}
