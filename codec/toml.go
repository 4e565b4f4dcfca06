package codec

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOML is the [Codec] for TOML documents.
//
// Decoding yields the document root as a map[string]any, an empty document
// decoding to an empty one. Encoding requires the root to be a mapping with
// string keys, TOML knowing no other document root.
type TOML struct{}

// Decode reads one TOML document from r.
func (TOML) Decode(r io.Reader, _ *ReadOptions) (any, error) {
	root := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("(codec-toml) %w: %w", ErrFormat, err)
	}

	return root, nil
}

// Encode writes v to w as a TOML document.
func (TOML) Encode(w io.Writer, v any, _ *WriteOptions) error {
	if !IsMapping(v) {
		return fmt.Errorf("(codec-toml) %w: document root must be a mapping", ErrInvalidContent)
	}

	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("(codec-toml) %w: %w", ErrFormat, err)
	}

	return nil
}
