package errors

import (
	"errors"
	"runtime"
	"syscall"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/pathbuf"
)

// pathOwner is the state kept alive by the release hook of a path-carrying
// error. It must not reference the *Error.
type pathOwner struct {
	raw pathbuf.Raw
	a   alloc.Allocator
}

func releasePath(o pathOwner) {
	b := pathbuf.FromRaw(o.raw, o.a)
	b.Release()
}

// adoptPath moves b into a new path-carrying error. The buffer is released
// through a once the error is unreachable.
func adoptPath(b *pathbuf.Buf[alloc.Allocator], a alloc.Allocator) *Error {
	raw := b.IntoRaw()
	e := &Error{p: raw.Pointer(), bits: uint64(tagPath)}
	runtime.AddCleanup(e, releasePath, pathOwner{raw: raw, a: a})
	return e
}

// packPath builds a packed buffer for path from the default allocator. A
// failure is returned as an InvalidInput or OutOfMemory *Error.
func packPath(path string) (pathbuf.Buf[alloc.Allocator], alloc.Allocator, *Error) {
	a := alloc.Default()
	b, err := pathbuf.FromPath(a, path)
	switch {
	case err == nil:
		return b, a, nil
	case errors.Is(err, pathbuf.ErrInteriorNul):
		return b, a, New(KindInvalidInput, pathbuf.ErrInteriorNul.Error())
	default:
		return b, a, New(KindOutOfMemory, pathbuf.ErrLayoutOverflow.Error())
	}
}

// NewPathError creates an error carrying an OS error code and the path that
// caused it, packed in a single allocation.
//
// If path contains a NUL byte the result is a KindInvalidInput error, and if
// its packed size cannot be represented a KindOutOfMemory error; neither
// carries the code.
//
// Example:
//
//	err := errors.NewPathError("/tmp/missing", 2)
//	fmt.Println(err) // [NOT_FOUND] no such file or directory (os error 2) at path "/tmp/missing"
func NewPathError(path string, code int32) *Error {
	b, a, perr := packPath(path)
	if perr != nil {
		return perr
	}
	b.SetCode(code)
	return adoptPath(&b, a)
}

// RunWithPath packs path into a NUL-terminated buffer and calls f with a
// pointer to its first byte, so f can pass it straight to a system call.
//
// If f returns a zero errno the buffer is released and RunWithPath returns
// f's value and a nil error. Otherwise the errno is stored in the same buffer
// and returned as a path-carrying *Error, with no further allocation for the
// path. If the path cannot be packed, f is not called.
//
// The pointer passed to f is valid only for the duration of the call.
func RunWithPath[T any](path string, f func(p *byte) (T, syscall.Errno)) (T, error) {
	var zero T

	b, a, perr := packPath(path)
	if perr != nil {
		return zero, perr
	}

	v, errno := f(b.CStr().Ptr())
	if errno == 0 {
		b.Release()
		return v, nil
	}

	b.SetCode(int32(errno))
	return v, adoptPath(&b, a)
}

// WithPath attaches path to an error that carries an OS code and no path.
//
// err may be an *Error built from an OS code, a syscall.Errno, or any error
// wrapping a syscall.Errno (such as *fs.PathError). Other errors, and errors
// that already carry a path, are returned unchanged. Returns nil if err is
// nil.
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		if e.tag() != tagOS {
			return err
		}
		code, _ := e.osCode()
		return NewPathError(path, code)
	}

	if _, ok := PathOf(err); ok {
		return err
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return NewPathError(path, int32(errno))
	}
	return err
}
