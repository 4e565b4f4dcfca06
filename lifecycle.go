package sessfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// Open replaces the session's file handle with one opened in the given
// access mode. Modes follow the classic r/w/a/x grammar with the optional
// + and b qualifiers and are matched case-insensitively. Opening in the
// mode the session already holds is a no-op that keeps the current handle
// and its cursor. Any other mode change closes the prior handle first.
func (s *Session) Open(mode string) error {
	mode = strings.ToLower(mode)

	if !s.Closed() && s.mode.String() == mode {
		return nil
	}

	if err := s.Close(); err != nil {
		return err
	}

	parsed, err := ParseMode(mode)
	if err != nil {
		return fmt.Errorf("(sess-open) %w: %w", ErrOpenFailed, err)
	}

	file, err := os.OpenFile(s.path, parsed.OpenFlag(), filePerm)
	if err != nil {
		return fmt.Errorf("(sess-open) %w: %w", ErrOpenFailed, err)
	}

	s.file = file
	s.mode = parsed

	return nil
}

// Close releases the session's file handle. Closing an already closed
// session is a no-op, so deferred closes stay safe on any path.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}

	if err := s.file.Close(); err != nil {
		s.file = nil

		return fmt.Errorf("(sess-close) failed to close file: %w", err)
	}

	s.file = nil

	return nil
}

// Clear truncates the file to zero length. An open session keeps its access
// mode and receives a fresh handle in that mode; a closed session is left
// open in truncating write mode afterwards.
func (s *Session) Clear() error {
	wasClosed := s.Closed()
	prior := s.mode

	if err := s.Open("w"); err != nil {
		return err
	}

	if !wasClosed {
		if err := s.Open(prior.String()); err != nil {
			return err
		}
	}

	return nil
}

// Delete closes the session and removes the file from the filesystem. A
// file already gone is only warned about, so cleanup paths can call Delete
// unconditionally. The session is left unbound and unusable afterwards.
func (s *Session) Delete() error {
	if err := s.Close(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("File was already removed from the filesystem.", "path", s.path)
		} else {
			return fmt.Errorf("(sess-delete) %w: %w", ErrDeleteFailed, err)
		}
	}

	s.path = ""
	s.mode = Mode{}

	return nil
}
