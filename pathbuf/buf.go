package pathbuf

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/internal/invariants"
)

// Buf owns a packed path-and-code buffer allocated from A.
//
// With a zero-sized allocator type such as alloc.Heap, a Buf is a single
// pointer. The zero Buf owns nothing.
type Buf[A alloc.Allocator] struct {
	// a comes first: a zero-sized trailing field would be padded to a word.
	a   A
	hdr *header
}

// FromPathBytes copies b into a new packed buffer allocated from a, with the
// OS code set to 0.
//
// It returns ErrInteriorNul if b contains a NUL byte and ErrLayoutOverflow if
// the buffer size cannot be represented; in both cases a is not called. If a
// refuses a valid request, alloc.HandleAllocError is called and FromPathBytes
// does not return.
func FromPathBytes[A alloc.Allocator](a A, b []byte) (Buf[A], error) {
	if bytes.IndexByte(b, 0) >= 0 {
		return Buf[A]{}, ErrInteriorNul
	}
	return build(a, b, uintptr(len(b))+1)
}

// FromPath is FromPathBytes for a string path. The string is not copied
// before packing.
func FromPath[A alloc.Allocator](a A, path string) (Buf[A], error) {
	return FromPathBytes(a, unsafe.Slice(unsafe.StringData(path), len(path)))
}

// New packs b using alloc.Default.
func New(b []byte) (Buf[alloc.Allocator], error) {
	return FromPathBytes(alloc.Default(), b)
}

func build[A alloc.Allocator](a A, b []byte, lenWithNul uintptr) (Buf[A], error) {
	layout, err := layoutForLen(lenWithNul)
	if err != nil {
		return Buf[A]{}, fmt.Errorf("%w: %w", ErrLayoutOverflow, err)
	}

	p := a.Allocate(layout)
	if p == nil {
		alloc.HandleAllocError(layout)
	}
	invariants.Assert(uintptr(p)%layout.Align() == 0, "allocator returned %p for %s", p, layout)

	h := (*header)(p)
	*h = header{lenWithNul: lenWithNul}

	dst := payload(h)
	copy(dst, b)
	dst[len(b)] = 0

	return Buf[A]{a: a, hdr: h}, nil
}

// IsZero reports whether b owns nothing: it was never built, or it has been
// released or moved with IntoRaw.
func (b *Buf[A]) IsZero() bool {
	return b.hdr == nil
}

// Code returns the stored OS error code; 0 means none. b must not be zero.
func (b *Buf[A]) Code() int32 {
	return b.hdr.osCode
}

// SetCode stores an OS error code. The path is not touched. b must not be
// zero.
func (b *Buf[A]) SetCode(code int32) {
	b.hdr.osCode = code
}

// CStr returns a view of the NUL-terminated path. The view aliases the
// buffer and is valid until b is released.
func (b *Buf[A]) CStr() CStr {
	return CStr{b: payload(b.hdr)}
}

// Layout returns the Layout the buffer was allocated with.
func (b *Buf[A]) Layout() alloc.Layout {
	l, err := layoutForLen(b.hdr.lenWithNul)
	invariants.Assert(err == nil, "stored length %d has no layout: %v", b.hdr.lenWithNul, err)
	return l
}

// Release frees the buffer and zeroes b. Releasing a zero Buf does nothing,
// so a buffer is freed at most once through any one value.
func (b *Buf[A]) Release() {
	if b.hdr == nil {
		return
	}

	// The length was accepted by layoutForLen at construction, so the error
	// is not checked again.
	layout, err := layoutForLen(b.hdr.lenWithNul)
	invariants.Assert(err == nil, "stored length %d has no layout: %v", b.hdr.lenWithNul, err)

	p := unsafe.Pointer(b.hdr)
	b.hdr = nil
	b.a.Deallocate(p, layout)
}

// String returns the path and code for debugging.
func (b *Buf[A]) String() string {
	if b.hdr == nil {
		return "pathbuf.Buf{}"
	}
	return fmt.Sprintf("pathbuf.Buf{path: %q, code: %d}", b.CStr().Bytes(), b.hdr.osCode)
}
