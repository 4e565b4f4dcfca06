package sessfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultCopySuffix is the name-collision suffix copies fall back to.
const DefaultCopySuffix = "1"

// CopyOptions configure a [Session.Copy]. The zero value copies under the
// original file name and resolves collisions with [DefaultCopySuffix].
type CopyOptions struct {
	// Filename is the preferred base name of the copy, without an
	// extension; the original's extension always carries over. Empty means
	// the original's base name.
	Filename string

	// Suffix separates the copy's name from colliding files at the
	// destination. Numeric suffixes count upwards on repeated collisions,
	// non-numeric ones chain with the collision round. Empty means
	// [DefaultCopySuffix].
	Suffix string
}

// Copy duplicates the file into the destination directory and returns a
// closed [Session] bound to the copy. The destination must be a directory
// path; missing directories are created. Name collisions are resolved by
// suffixing per [CopyOptions]. The copy inherits the original's encoding
// and file type dispatch.
func (s *Session) Copy(destination string, opts *CopyOptions) (*Session, error) {
	if opts == nil {
		opts = &CopyOptions{}
	}

	destination, err := filepath.Abs(destination)
	if err != nil {
		return nil, fmt.Errorf("(sess-copy) failed to resolve destination: %w", err)
	}

	if filepath.Ext(destination) != "" {
		return nil, fmt.Errorf("(sess-copy) %w: destination cannot be a file", ErrInvalidDestination)
	}

	filename := opts.Filename
	if filename != "" {
		filename = strings.ReplaceAll(filename, `\`, "")
		if filepath.Ext(filename) != "" {
			return nil, fmt.Errorf("(sess-copy) %w: filename cannot carry an extension", ErrInvalidArgument)
		}

		filename += s.Ext()
	}

	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultCopySuffix
	}

	numeric, isNumeric := 0, false
	if n, err := strconv.Atoi(suffix); err == nil {
		if n < 1 {
			return nil, fmt.Errorf("(sess-copy) %w: numeric suffixes must be positive", ErrInvalidArgument)
		}

		numeric, isNumeric = n, true
	}

	target := filepath.Join(destination, s.Name())
	if filename != "" {
		target = filepath.Join(destination, filename)
	}

	for c := 1; pathExists(target); c++ {
		sfx := suffix
		if isNumeric {
			sfx = strconv.Itoa(numeric)
		}

		candidate := fmt.Sprintf("%s_%s%s", s.Stem(), sfx, s.Ext())
		if filename != "" {
			stem := strings.TrimSuffix(filename, filepath.Ext(filename))
			candidate = fmt.Sprintf("%s_%s%s", stem, sfx, filepath.Ext(filename))
		}

		target = filepath.Join(destination, candidate)
		if !pathExists(target) {
			break
		}

		if isNumeric {
			numeric++
		} else {
			suffix = fmt.Sprintf("%s_%d", suffix, c)
		}
	}

	dst, err := New(target, &Options{
		Encoding:     s.encName,
		MustNotExist: true,
		AllowAny:     s.allowAny,
	})
	if err != nil {
		return nil, err
	}

	contents, err := s.Read("", nil)
	if err != nil {
		return nil, err
	}

	if err := dst.Write(contents, "w+", nil); err != nil {
		return nil, err
	}

	if err := dst.Close(); err != nil {
		return nil, err
	}

	return dst, nil
}

// Move relocates the file into the destination directory and rebinds the
// session to the new location, closed but immediately reopenable. Moving
// into the file's current directory fails with [ErrSameLocation]. Under the
// hood this is a copy followed by a delete of the original, so collisions
// resolve the same way as in [Session.Copy].
func (s *Session) Move(destination string) error {
	destination, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("(sess-move) failed to resolve destination: %w", err)
	}

	if destination == s.Dir() {
		return fmt.Errorf("(sess-move) %w: %s", ErrSameLocation, destination)
	}

	dst, err := s.Copy(destination, nil)
	if err != nil {
		return err
	}

	if err := s.Delete(); err != nil {
		return err
	}

	s.path = dst.path
	s.mode = dst.mode

	return nil
}

// pathExists reports whether any filesystem object sits at path.
func pathExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
