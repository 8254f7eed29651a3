package obj

import "errors"

// Error kinds reported by this package. Callers match them with errors.Is;
// the wrapped message carries file/line or index context.
var (
	// ErrIO wraps a failure to open, read, or write an OBJ file.
	ErrIO = errors.New("i/o error")

	// ErrInvalidContext is returned when parsing into a File that already
	// holds meshes. A File parses exactly once.
	ErrInvalidContext = errors.New("invalid context")

	// ErrOutOfRange is returned by index accessors and by the unindexed
	// export when a face references data past the end of its pool.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for bulk data whose length is not a
	// multiple of 3 and for malformed or unsupported file content.
	ErrInvalidArgument = errors.New("invalid argument")
)
