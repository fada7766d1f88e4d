package errors

import (
	"fmt"
	"syscall"
	"unsafe"
)

// New creates an error of the given kind with a message.
//
// Example:
//
//	err := errors.New(errors.KindInvalidInput, "path contains interior nul byte")
func New(kind Kind, msg string) *Error {
	return &Error{
		p:    unsafe.Pointer(&message{kind: kind, text: msg}),
		bits: uint64(tagSimpleMessage),
	}
}

// Newf creates an error of the given kind with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.KindInvalidFilename, "name too long: %d bytes (max %d)", len(name), maxLen)
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// FromKind creates an error that carries only a kind. Its message is the
// kind's description. It does not allocate beyond the *Error itself.
func FromKind(kind Kind) *Error {
	return &Error{bits: uint64(kind)<<8 | uint64(tagSimple)}
}

// FromRawOSError creates an error from an OS error code.
//
// Example:
//
//	err := errors.FromRawOSError(2)
//	fmt.Println(err) // [NOT_FOUND] no such file or directory (os error 2)
func FromRawOSError(code int32) *Error {
	return &Error{bits: uint64(uint32(code))<<32 | uint64(tagOS)}
}

// FromErrno creates an error from a syscall.Errno. It returns nil for a zero
// errno.
func FromErrno(errno syscall.Errno) error {
	if errno == 0 {
		return nil
	}
	return FromRawOSError(int32(errno))
}
