package sessfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/desertwitch/sessfile/internal/charset"
	"golang.org/x/text/encoding"
)

const (
	// DefaultMode is the access mode sessions are opened with at
	// construction: reading plus appending, creating the file when missing.
	DefaultMode = "a+"

	// DefaultReadMode is the access mode dispatched reads fall back to.
	DefaultReadMode = "r+"

	// DefaultWriteMode is the access mode dispatched writes fall back to.
	DefaultWriteMode = "a+"

	dirPerm  = 0o777
	filePerm = 0o666
)

// Session binds a filesystem path to an open file handle and the
// serialization format derived from the file's extension.
//
// A Session is not safe for concurrent use; see the package documentation
// for the ownership rules.
type Session struct {
	path    string
	encName string
	enc     encoding.Encoding

	file *os.File
	mode Mode

	created  bool
	allowAny bool
}

// Options configure the construction of a [Session]. The zero value creates
// missing files, accepts existing ones, dispatches only supported file types
// and uses UTF-8 for text access.
type Options struct {
	// Encoding is the IANA name of the character encoding applied on
	// non-binary access. Empty means UTF-8.
	Encoding string

	// MustExist fails construction with [ErrNotFound] instead of creating a
	// missing file.
	MustExist bool

	// MustNotExist fails construction with [ErrAlreadyExists] when the file
	// is already present.
	MustNotExist bool

	// AllowAny dispatches raw reads and writes for file types outside the
	// supported set, instead of failing with [ErrUnsupportedType].
	AllowAny bool
}

// New binds path to a new [Session] and opens it in [DefaultMode], so the
// session is usable for both reading and writing right away. Relative paths
// resolve against the working directory. A missing file is created together
// with its missing parent directories, unless [Options.MustExist] demands
// its prior existence. A nil opts means the documented defaults.
func New(path string, opts *Options) (*Session, error) {
	if opts == nil {
		opts = &Options{}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("(sess-new) failed to resolve path: %w", err)
	}

	enc, err := charset.Lookup(opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("(sess-new) %w: %w", ErrOpenFailed, err)
	}

	s := &Session{
		path:     abs,
		encName:  opts.Encoding,
		enc:      enc,
		allowAny: opts.AllowAny,
	}

	if _, err := os.Stat(abs); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(sess-new) failed to stat: %w", err)
		}

		if opts.MustExist {
			return nil, fmt.Errorf("(sess-new) %w: %s", ErrNotFound, abs)
		}

		if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
			return nil, fmt.Errorf("(sess-new) failed to create parent directories: %w", err)
		}

		file, err := os.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
		if err != nil {
			return nil, fmt.Errorf("(sess-new) failed to create file: %w", err)
		}
		if err := file.Close(); err != nil {
			return nil, fmt.Errorf("(sess-new) failed to close created file: %w", err)
		}

		s.created = true
	} else if opts.MustNotExist {
		return nil, fmt.Errorf("(sess-new) %w: %s", ErrAlreadyExists, abs)
	}

	if info, err := os.Stat(abs); err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("(sess-new) %w: %s", ErrNotRegularFile, abs)
	}

	if err := s.Open(DefaultMode); err != nil {
		return nil, err
	}

	return s, nil
}

// String implements [fmt.Stringer] for logging surfaces.
func (s *Session) String() string {
	return fmt.Sprintf("<Session path=%s mode=%s>", s.path, s.mode.String())
}

// Encoding returns the IANA name of the configured character encoding, the
// empty name reading as UTF-8.
func (s *Session) Encoding() string {
	if s.encName == "" {
		return "utf-8"
	}

	return s.encName
}

// Exists reports whether the bound path currently is a regular file on the
// filesystem.
func (s *Session) Exists() bool {
	info, err := os.Stat(s.path)

	return err == nil && info.Mode().IsRegular()
}

// Created reports whether the file was newly created at construction.
func (s *Session) Created() bool {
	return s.created
}

// Closed reports whether the session currently holds no open file handle.
func (s *Session) Closed() bool {
	return s.file == nil
}

// Mode returns the normalized access mode of the last open. It keeps its
// value across [Session.Close], resets on [Session.Delete] and is the empty
// string while the session never held a handle on the bound path.
func (s *Session) Mode() string {
	return s.mode.String()
}

// Size returns the file's current size in bytes.
func (s *Session) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("(sess-size) failed to stat: %w", err)
	}

	return info.Size(), nil
}
