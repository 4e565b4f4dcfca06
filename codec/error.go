package codec

import "errors"

var (
	// ErrFormat is an error that occurs when serialized contents cannot be
	// decoded, or a value cannot be encoded, in the dispatched format.
	ErrFormat = errors.New("malformed contents for file format")

	// ErrInvalidContent is an error that occurs when a value's type does
	// not suit the format it is to be encoded in.
	ErrInvalidContent = errors.New("content type not suitable for file format")
)
