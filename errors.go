package sessfile

import (
	"errors"

	"github.com/desertwitch/sessfile/codec"
)

var (
	// ErrNotFound is an error that occurs when the file is required to
	// already exist, but does not.
	ErrNotFound = errors.New("file does not exist")

	// ErrAlreadyExists is an error that occurs when the file is required to
	// not yet exist, but does.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrNotRegularFile is an error that occurs when the path resolves to
	// something other than a regular file.
	ErrNotRegularFile = errors.New("path is not a regular file")

	// ErrOpenFailed is an error that occurs when the file cannot be opened
	// in the requested mode or with the configured encoding.
	ErrOpenFailed = errors.New("file cannot be opened")

	// ErrDeleteFailed is an error that occurs when the file cannot be
	// removed from the filesystem.
	ErrDeleteFailed = errors.New("file cannot be deleted")

	// ErrUnsupportedType is an error that occurs when contents of a file
	// type outside the supported set are dispatched without
	// [Options.AllowAny].
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidMode is an error that occurs when an access mode
	// contradicts the requested operation, such as reading in a write-only
	// mode.
	ErrInvalidMode = errors.New("invalid mode for operation")

	// ErrInvalidDestination is an error that occurs when a transfer
	// destination is not a directory path.
	ErrInvalidDestination = errors.New("destination is not a directory")

	// ErrInvalidArgument is an error that occurs when an operation argument
	// is outside its valid domain, such as a non-positive numeric copy
	// suffix.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSameLocation is an error that occurs when a move destination
	// equals the directory the file already resides in.
	ErrSameLocation = errors.New("file already resides at destination")

	// ErrUnsupportedOperation is an error that occurs when an operation is
	// not defined for the session's file type.
	ErrUnsupportedOperation = errors.New("operation not supported for file type")
)

// Codec failures surface through the same [errors.Is] checks as session
// failures.
var (
	// ErrFormat mirrors [codec.ErrFormat].
	ErrFormat = codec.ErrFormat

	// ErrInvalidContent mirrors [codec.ErrInvalidContent].
	ErrInvalidContent = codec.ErrInvalidContent
)
