package codec

import (
	"encoding/gob"
	"fmt"
	"io"
)

//nolint:gochecknoinits
func init() {
	// Generic mappings and slices survive the interface round-trip only
	// when registered as gob concrete types.
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// Gob is the [Codec] for binary object graphs in Go's gob encoding. Files
// carrying pickle extensions hold gob streams.
//
// Encoding appends exactly one serialized value per call. Decoding yields
// the value at the head of the stream, later appended values staying
// untouched.
type Gob struct{}

// Decode reads the first gob-encoded value from r.
func (Gob) Decode(r io.Reader, _ *ReadOptions) (any, error) {
	var v any
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("(codec-gob) %w: %w", ErrFormat, err)
	}

	return v, nil
}

// Encode writes one gob-encoded value to w.
func (Gob) Encode(w io.Writer, v any, _ *WriteOptions) error {
	if err := gob.NewEncoder(w).Encode(&v); err != nil {
		return fmt.Errorf("(codec-gob) %w: %w", ErrFormat, err)
	}

	return nil
}
