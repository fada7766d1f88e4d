package pathbuf

import (
	"bytes"
	"unsafe"
)

// CStr is a borrowed view of NUL-terminated path bytes. It does not own the
// memory: it is valid only while the buffer it came from is live, and it must
// not be written through.
type CStr struct {
	b []byte // includes the terminator
}

// Len returns the path length without the terminator.
func (c CStr) Len() int {
	if len(c.b) == 0 {
		return 0
	}
	return len(c.b) - 1
}

// Bytes returns the path without the terminator.
func (c CStr) Bytes() []byte {
	if len(c.b) == 0 {
		return nil
	}
	return c.b[:len(c.b)-1 : len(c.b)-1]
}

// BytesWithNul returns the path including the terminator.
func (c CStr) BytesWithNul() []byte {
	return c.b[:len(c.b):len(c.b)]
}

// Ptr returns a pointer to the first byte, suitable as a C string argument to
// a system call. It returns nil for the zero CStr.
func (c CStr) Ptr() *byte {
	if len(c.b) == 0 {
		return nil
	}
	return &c.b[0]
}

// String returns a copy of the path.
func (c CStr) String() string {
	return string(c.Bytes())
}

// UnsafeString returns the path as a string that shares memory with the
// buffer. The string must not be used after the buffer is released.
func (c CStr) UnsafeString() string {
	n := c.Len()
	if n == 0 {
		return ""
	}
	return unsafe.String(&c.b[0], n)
}

// Equal reports whether the path equals p.
func (c CStr) Equal(p []byte) bool {
	return bytes.Equal(c.Bytes(), p)
}
