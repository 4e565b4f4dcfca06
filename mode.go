package sessfile

import (
	"fmt"
	"os"
	"strings"
)

// Mode is a parsed file access mode. Modes are spelled as short strings:
// exactly one base letter of "r" (read), "w" (write, truncating), "a"
// (append) or "x" (create, failing on existing files), optionally extended
// with "+" for combined read/write access and "b" for binary
// (transformation-free) access. Letter order is free, no letter may repeat.
type Mode struct {
	base   byte
	plus   bool
	binary bool

	str string
}

// ParseMode parses a mode string into a [Mode]. Parsing is case-insensitive,
// the normalized (lowercased) spelling being retained for [Mode.String].
func ParseMode(mode string) (Mode, error) {
	m := Mode{str: strings.ToLower(mode)}

	var text bool
	for _, c := range m.str {
		switch c {
		case 'r', 'w', 'a', 'x':
			if m.base != 0 {
				return Mode{}, fmt.Errorf("mode %q has more than one base letter", m.str)
			}
			m.base = byte(c)
		case '+':
			if m.plus {
				return Mode{}, fmt.Errorf("mode %q repeats '+'", m.str)
			}
			m.plus = true
		case 'b':
			if m.binary {
				return Mode{}, fmt.Errorf("mode %q repeats 'b'", m.str)
			}
			m.binary = true
		case 't':
			if text {
				return Mode{}, fmt.Errorf("mode %q repeats 't'", m.str)
			}
			text = true
		default:
			return Mode{}, fmt.Errorf("mode %q contains unknown letter %q", m.str, c)
		}
	}

	if m.base == 0 {
		return Mode{}, fmt.Errorf("mode %q is missing a base letter", m.str)
	}

	if m.binary && text {
		return Mode{}, fmt.Errorf("mode %q mixes binary and text access", m.str)
	}

	return m, nil
}

// String returns the normalized spelling the mode was parsed from, or the
// empty string for the zero [Mode].
func (m Mode) String() string {
	return m.str
}

// IsZero reports whether the mode is the unparsed zero [Mode].
func (m Mode) IsZero() bool {
	return m.base == 0
}

// Readable reports whether the mode permits reading.
func (m Mode) Readable() bool {
	return m.base == 'r' || m.plus
}

// Writable reports whether the mode permits writing.
func (m Mode) Writable() bool {
	return m.base != 'r' || m.plus
}

// Append reports whether writes always go to the end of the file.
func (m Mode) Append() bool {
	return m.base == 'a'
}

// Binary reports whether file access bypasses character encoding.
func (m Mode) Binary() bool {
	return m.binary
}

// OpenFlag maps the mode to its [os.OpenFile] flag set.
func (m Mode) OpenFlag() int {
	var flag int

	switch {
	case m.base == 'r' && !m.plus:
		flag = os.O_RDONLY
	case m.base != 'r' && !m.plus:
		flag = os.O_WRONLY
	default:
		flag = os.O_RDWR
	}

	switch m.base {
	case 'w':
		flag |= os.O_CREATE | os.O_TRUNC
	case 'a':
		flag |= os.O_CREATE | os.O_APPEND
	case 'x':
		flag |= os.O_CREATE | os.O_EXCL
	}

	return flag
}
