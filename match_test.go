package grrs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMatches(t *testing.T) {
	tests := []struct {
		name    string
		content string
		num     int
		pattern string
		want    string
	}{
		{"SingleMatch", "lorem ipsum\ndolor sit amet", 1, "lorem", "LINE# 1: lorem ipsum\n"},
		{"NoMatch", "lorem ipsum\ndolor sit amet", 3, "consectetur", ""},
		{"EveryLineSharesNumber", "a test\nno\nanother test", 7, "test", "LINE# 7: a test\nLINE# 7: another test\n"},
		{"CaseSensitive", "Test\ntest", 2, "test", "LINE# 2: test\n"},
		{"TrailingNewline", "a test\n", 1, "test", "LINE# 1: a test\n"},
		{"CRLF", "a test\r\n", 4, "test", "LINE# 4: a test\n"},
		{"EmptyPatternMatchesEveryLine", "one\ntwo", 1, "", "LINE# 1: one\nLINE# 1: two\n"},
		{"EmptyLineWithEmptyPattern", "\n", 2, "", "LINE# 2: \n"},
		{"EmptyContent", "", 1, "", ""},
		{"Unicode", "naïve café\nplain", 9, "café", "LINE# 9: naïve café\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintMatches(tt.content, tt.num, tt.pattern, &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrintMatchesWriteError(t *testing.T) {
	boom := errors.New("boom")

	err := PrintMatches("a test", 1, "test", failingWriter{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// nothing matches, so the sink is never touched
	assert.NoError(t, PrintMatches("nothing", 1, "test", failingWriter{err: boom}))
}

func TestMatches(t *testing.T) {
	got := Matches("A test\nActual content\nAnother test", 5, "test")
	assert.Equal(t, []Match{
		{Line: 5, Content: "A test"},
		{Line: 5, Content: "Another test"},
	}, got)

	assert.Empty(t, Matches("abc", 1, "x"))
}

func TestValidatePattern(t *testing.T) {
	for _, p := range []string{"", " ", "\t\n", "   "} {
		err := ValidatePattern(p)
		require.Error(t, err, "pattern %q", p)
		assert.Contains(t, err.Error(), "pattern appears to be empty")

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, KindValidation, gerr.Kind)
	}

	for _, p := range []string{"a", " a ", "test"} {
		assert.NoError(t, ValidatePattern(p), "pattern %q", p)
	}
}
