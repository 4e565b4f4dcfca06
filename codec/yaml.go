package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML is the [Codec] for YAML documents.
//
// Decoding yields the document root as generic Go values, mappings decoding
// into map[string]any. An empty document decodes to nil. Encoding accepts
// any root and writes block style.
type YAML struct{}

// Decode reads one YAML document from r.
func (YAML) Decode(r io.Reader, _ *ReadOptions) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("(codec-yaml) %w: %w", ErrFormat, err)
	}

	return v, nil
}

// Encode writes v to w as a block-style YAML document.
func (YAML) Encode(w io.Writer, v any, _ *WriteOptions) error {
	enc := yaml.NewEncoder(w)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("(codec-yaml) %w: %w", ErrFormat, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("(codec-yaml) %w: %w", ErrFormat, err)
	}

	return nil
}
