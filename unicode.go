package grrs

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// autoEncoding is the name reported when the input encoding is sniffed.
const autoEncoding = "auto"

// newDecoder returns a transformer producing UTF-8 from input in the named
// encoding, along with the canonical encoding name. A byte order mark always
// takes precedence: UTF-8 marks are stripped and UTF-16 input is decoded.
// With no name, input without a BOM passes through byte for byte.
func newDecoder(name string) (transform.Transformer, string, error) {
	if name == "" || strings.EqualFold(name, autoEncoding) {
		return unicode.BOMOverride(encoding.Nop.NewDecoder()), autoEncoding, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", errors.Wrapf(err, "unknown encoding %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return unicode.BOMOverride(enc.NewDecoder()), canonical, nil
}
