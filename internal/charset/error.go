package charset

import "errors"

var (
	// ErrUnknownEncoding is an error that occurs when a character set name
	// is not resolvable through the IANA index.
	ErrUnknownEncoding = errors.New("unknown character encoding")
)
