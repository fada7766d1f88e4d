package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle missing file
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var e *errors.Error
//	if errors.As(err, &e) {
//	    kind := e.Kind()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// KindOf extracts the Kind from an error.
//
// The outermost *Error in the chain decides. Without one, a syscall.Errno in
// the chain is decoded, and the io/fs sentinels map to their kinds. Returns
// KindUncategorized if err is nil or nothing matches.
//
// Example:
//
//	if errors.KindOf(err) == errors.KindNotFound {
//	    // Handle not found
//	}
func KindOf(err error) Kind {
	if err == nil {
		return KindUncategorized
	}

	if e, ok := asError(err); ok {
		return e.Kind()
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return decodeErrorKind(int32(errno))
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case stderrors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case stderrors.Is(err, os.ErrDeadlineExceeded):
		return KindTimedOut
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return KindUnsupported
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return KindUnexpectedEOF
	}
	return KindUncategorized
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or its kind is not
// retryable. This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}
	return KindOf(err).Classification()
}

// IsRetryable returns true if the error is classified as retryable.
//
// Example:
//
//	for {
//	    _, err := fsys.Open(path, flags, 0)
//	    if !errors.IsRetryable(err) {
//	        return err
//	    }
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// RawOSError returns the OS error code carried by the first *Error or
// syscall.Errno in err's chain.
func RawOSError(err error) (int32, bool) {
	if err == nil {
		return 0, false
	}
	if e, ok := asError(err); ok {
		if code, ok := e.RawOSError(); ok {
			return code, true
		}
	}
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return int32(errno), true
	}
	return 0, false
}

// PathOf returns the path carried by the first path-carrying *Error in err's
// chain.
func PathOf(err error) (string, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if p, ok := e.Path(); ok {
				return p, true
			}
		}
		err = stderrors.Unwrap(err)
	}
	return "", false
}
