// Package charset resolves IANA character set names into their
// [encoding.Encoding] for transforming text-mode file contents.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Lookup resolves an IANA character set name. The empty name and UTF-8
// spellings resolve to a nil [encoding.Encoding], meaning contents need no
// transformation at all.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("(charset) %w: %w", ErrUnknownEncoding, err)
	}

	if enc == nil {
		// The index knows the name but carries no implementation for it.
		return nil, fmt.Errorf("(charset) %w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}
