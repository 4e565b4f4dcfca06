package sessfile

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/desertwitch/sessfile/codec"
	"golang.org/x/text/transform"
)

// ReadOptions adjust how file contents are decoded; see [codec.ReadOptions].
type ReadOptions = codec.ReadOptions

// WriteOptions adjust how file contents are encoded; see [codec.WriteOptions].
type WriteOptions = codec.WriteOptions

// Read decodes the file's contents according to its file type and returns
// them as the codec's natural Go value; unregistered types come back raw,
// as string in text modes and []byte in binary modes. The empty mode means
// [DefaultReadMode]. Modes carrying a w, a or x marker fail with
// [ErrInvalidMode], unsupported file types without [Options.AllowAny] fail
// with [ErrUnsupportedType]. Reading through the mode the session already
// holds continues from the current cursor. A nil opts means codec defaults.
func (s *Session) Read(mode string, opts *ReadOptions) (any, error) {
	if mode == "" {
		mode = DefaultReadMode
	}
	mode = strings.ToLower(mode)

	if strings.ContainsAny(mode, "wax") {
		return nil, fmt.Errorf("(sess-read) %w: %q is not a reading mode", ErrInvalidMode, mode)
	}

	format, err := s.dispatch()
	if err != nil {
		return nil, fmt.Errorf("(sess-read) %w", err)
	}

	if err := s.Open(mode); err != nil {
		return nil, err
	}

	// Gob streams are byte-exact and must bypass any charset transforms.
	if format == codec.FormatGob {
		if err := s.Open("rb+"); err != nil {
			return nil, err
		}
	}

	c, ok := codec.ForFormat(format)
	if !ok {
		c = codec.Raw{Binary: s.mode.Binary()}
	}

	v, err := c.Decode(s.reader(), opts)
	if err != nil {
		return nil, fmt.Errorf("(sess-read) %w", err)
	}

	return v, nil
}

// Content returns the file's decoded contents through a plain read-only
// open, the most common way to just look at a file.
func (s *Session) Content() (any, error) {
	return s.Read("r", nil)
}

// Write encodes v into the file according to its file type. The empty mode
// means [DefaultWriteMode], so writes append by default; pass "w" or "w+"
// to replace prior contents. Modes carrying an r or x marker fail with
// [ErrInvalidMode], unsupported file types without [Options.AllowAny] fail
// with [ErrUnsupportedType]. JSON files are always cleared before writing,
// and gob values always append to the end of the stream, regardless of the
// requested mode. A nil opts means codec defaults.
func (s *Session) Write(v any, mode string, opts *WriteOptions) error {
	if mode == "" {
		mode = DefaultWriteMode
	}
	mode = strings.ToLower(mode)

	if strings.ContainsAny(mode, "rx") {
		return fmt.Errorf("(sess-write) %w: %q is not a writing mode", ErrInvalidMode, mode)
	}

	format, err := s.dispatch()
	if err != nil {
		return fmt.Errorf("(sess-write) %w", err)
	}

	if err := s.Open(mode); err != nil {
		return err
	}

	switch format {
	case codec.FormatJSON:
		// JSON documents are rewritten whole, never appended to.
		if !codec.IsMapping(v) {
			return fmt.Errorf("(sess-write) %w: JSON documents require a mapping root", ErrInvalidContent)
		}

		if err := s.Clear(); err != nil {
			return err
		}

	case codec.FormatGob:
		// Gob values stack up as a stream, so writes always append in binary.
		if err := s.Open("ab+"); err != nil {
			return err
		}
	}

	c, ok := codec.ForFormat(format)
	if !ok {
		c = codec.Raw{Binary: s.mode.Binary()}
	}

	w, flush := s.writer()
	if err := c.Encode(w, v, opts); err != nil {
		return fmt.Errorf("(sess-write) %w", err)
	}
	if err := flush(); err != nil {
		return fmt.Errorf("(sess-write) failed to flush encoded contents: %w", err)
	}

	return nil
}

// UpdateJSON shallow-merges content into the file's existing JSON document
// and rewrites the file with the result. A file that cannot be read as JSON
// counts as an empty document, so UpdateJSON bootstraps fresh files too.
// It fails with [ErrUnsupportedOperation] on any non-JSON file type and
// with [ErrInvalidContent] when the existing document is no mapping.
func (s *Session) UpdateJSON(content map[string]any, opts *WriteOptions) error {
	if codec.Detect(s.Ext()) != codec.FormatJSON {
		return fmt.Errorf("(sess-update) %w: not usable with %q files", ErrUnsupportedOperation, s.Type())
	}

	current := map[string]any{}

	if v, err := s.Read("", nil); err == nil && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("(sess-update) %w: existing document is no mapping", ErrInvalidContent)
		}
		current = m
	}

	maps.Copy(current, content)

	return s.Write(current, "w", opts)
}

// dispatch resolves the serialization format for the session's current file
// type, enforcing the supported set unless any type is allowed.
func (s *Session) dispatch() (codec.Format, error) {
	if !isSupportedType(s.Type()) && !s.allowAny {
		return codec.FormatRaw, fmt.Errorf("%w: %q", ErrUnsupportedType, s.Type())
	}

	return codec.Detect(s.Ext()), nil
}

// reader wraps the file handle with the configured charset decoder on
// non-binary access.
func (s *Session) reader() io.Reader {
	if s.enc != nil && !s.mode.Binary() {
		return transform.NewReader(s.file, s.enc.NewDecoder())
	}

	return s.file
}

// writer wraps the file handle with the configured charset encoder on
// non-binary access. The returned flush must be called after encoding, as
// transform writers buffer partial runes until closed.
func (s *Session) writer() (io.Writer, func() error) {
	if s.enc != nil && !s.mode.Binary() {
		w := transform.NewWriter(s.file, s.enc.NewEncoder())

		return w, w.Close
	}

	return s.file, func() error { return nil }
}
