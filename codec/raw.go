package codec

import (
	"fmt"
	"io"
)

// Raw is the fallthrough [Codec] for file types without a dedicated
// serialization format. Contents pass through verbatim, as string in the
// text flavor and as []byte in the binary flavor.
type Raw struct {
	// Binary selects the []byte flavor over the string flavor.
	Binary bool
}

// Decode reads all of r.
func (c Raw) Decode(r io.Reader, _ *ReadOptions) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("(codec-raw) %w: %w", ErrFormat, err)
	}

	if c.Binary {
		return data, nil
	}

	return string(data), nil
}

// Encode writes v to w verbatim.
func (c Raw) Encode(w io.Writer, v any, _ *WriteOptions) error {
	if c.Binary {
		data, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("(codec-raw) %w: binary contents must be []byte", ErrInvalidContent)
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("(codec-raw) %w: %w", ErrFormat, err)
		}

		return nil
	}

	text, ok := v.(string)
	if !ok {
		return fmt.Errorf("(codec-raw) %w: text contents must be string", ErrInvalidContent)
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("(codec-raw) %w: %w", ErrFormat, err)
	}

	return nil
}
