package errors

import (
	"errors"
	"fmt"
	"unsafe"
)

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Rename(from, to); err != nil {
//	    return errors.Wrap(err, errors.KindCrossesDevices, "failed to move segment")
//	}
func Wrap(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return newCustom(kind, msg, err)
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(name); err != nil {
//	    return errors.Wrapf(err, errors.KindInvalidFilename, "invalid name %q", name)
//	}
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return newCustom(kind, fmt.Sprintf(format, args...), err)
}

// WrapKind wraps err using the kind of err itself, as reported by KindOf.
//
// Returns nil if err is nil.
func WrapKind(err error, msg string) error {
	if err == nil {
		return nil
	}
	return newCustom(KindOf(err), msg, err)
}

func newCustom(kind Kind, msg string, cause error) *Error {
	return &Error{
		p:    unsafe.Pointer(&custom{kind: kind, text: msg, cause: cause}),
		bits: uint64(tagCustom),
	}
}

// asError finds the first *Error in err's chain.
func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
