package pathbuf

import "errors"

var (
	// ErrInteriorNul is returned when the path contains a NUL byte. It is an
	// invalid-input condition; nothing is allocated.
	ErrInteriorNul = errors.New("path contains interior nul byte")

	// ErrLayoutOverflow is returned when the packed size of the path cannot be
	// represented. It is reported as an out-of-memory condition even though the
	// allocator is never called.
	ErrLayoutOverflow = errors.New("cannot allocate memory for nul terminated path")
)
