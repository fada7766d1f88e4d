// Package errors provides the error type for filesystem and OS operations.
//
// An *Error is two words wide and holds one of five representations:
//
//   - an OS error code (FromRawOSError, FromErrno)
//   - a Kind alone (FromKind)
//   - a Kind with a fixed message (New, Newf)
//   - a Kind with a message and a wrapped cause (Wrap, Wrapf)
//   - an OS error code together with the path that caused it (NewPathError,
//     RunWithPath, WithPath)
//
// The path-carrying form keeps the code and the NUL-terminated path in one
// packed allocation (see package pathbuf) and stores only its raw handle.
// Reading the code or the path peeks through the handle; the buffer is freed
// once the *Error becomes unreachable.
//
// # Quick Start
//
// Running a system call with a packed path:
//
//	fd, err := errors.RunWithPath(path, func(p *byte) (int, syscall.Errno) {
//	    r, _, errno := syscall.Syscall(syscall.SYS_OPEN, uintptr(unsafe.Pointer(p)), flags, 0)
//	    return int(r), errno
//	})
//	if err != nil {
//	    return err // "[NOT_FOUND] no such file or directory (os error 2) at path "/tmp/missing""
//	}
//
// Inspecting errors:
//
//	if errors.KindOf(err) == errors.KindNotFound {
//	    // Handle missing file
//	}
//	if path, ok := errors.PathOf(err); ok {
//	    log.Printf("failed path: %s", path)
//	}
//
// # Kinds
//
// Kind is the category of an error. OS codes are decoded into kinds on Linux
// and Darwin; elsewhere they report KindUncategorized. Each kind has a
// classification (retryable or permanent) used by IsRetryable.
//
// # Standard Library Compatibility
//
// An *Error built from an OS code unwraps to the matching syscall.Errno, so
// the standard library sentinels work:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle not found
//	}
//
// # Copying
//
// Always use *Error. Copying the struct would share the packed path buffer
// with a value the release hook does not know about.
package errors
