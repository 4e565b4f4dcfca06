package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSON is the [Codec] for JSON documents.
//
// Decoding yields the document root as generic Go values. Encoding requires
// the root to be a mapping with string keys and writes it indented by
// [DefaultJSONIndent], unless overridden through [WriteOptions].
type JSON struct{}

// Decode reads one JSON document from r.
func (JSON) Decode(r io.Reader, _ *ReadOptions) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("(codec-json) %w: %w", ErrFormat, err)
	}

	return v, nil
}

// Encode writes v to w as an indented JSON document.
func (JSON) Encode(w io.Writer, v any, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}

	if !IsMapping(v) {
		return fmt.Errorf("(codec-json) %w: document root must be a mapping", ErrInvalidContent)
	}

	indent := opts.Indent
	if indent == 0 {
		indent = DefaultJSONIndent
	}

	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("(codec-json) %w: %w", ErrFormat, err)
	}

	return nil
}
