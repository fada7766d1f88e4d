package pathbuf

import (
	"unsafe"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/internal/invariants"
)

// Raw is an unowned handle to a packed buffer. It is one pointer wide and
// carries no ownership tracking; whoever stores it is responsible for
// eventually passing it to FromRaw and releasing the result, or for never
// reclaiming it.
type Raw struct {
	p unsafe.Pointer
}

// RawFromPointer rebuilds a Raw from the value returned by Raw.Pointer.
func RawFromPointer(p unsafe.Pointer) Raw {
	return Raw{p: p}
}

// Pointer returns the handle as an unsafe.Pointer for inline storage.
func (r Raw) Pointer() unsafe.Pointer {
	return r.p
}

// IsNil reports whether r is the zero handle.
func (r Raw) IsNil() bool {
	return r.p == nil
}

// IntoRaw moves ownership of the buffer into a Raw and zeroes b, so a later
// b.Release does nothing.
func (b *Buf[A]) IntoRaw() Raw {
	r := Raw{p: unsafe.Pointer(b.hdr)}
	b.hdr = nil
	return r
}

// FromRaw takes ownership of the buffer behind r. The returned Buf frees it
// through a on Release.
//
// FromRaw does not validate r. The caller must guarantee that r came from
// IntoRaw on a Buf allocated by an allocator equivalent to a, that the buffer
// has not been freed, and that no other FromRaw for the same handle is live.
// Violating any of these is undefined behavior.
func FromRaw[A alloc.Allocator](r Raw, a A) Buf[A] {
	h := checkRaw(r)
	return Buf[A]{a: a, hdr: h}
}

// CodeFromRaw reads the OS code through r without taking ownership.
//
// r must be a live handle from IntoRaw; see FromRaw.
func CodeFromRaw(r Raw) int32 {
	return checkRaw(r).osCode
}

// CStrFromRaw returns the path view through r without taking ownership. The
// view is valid only while the buffer stays live.
//
// r must be a live handle from IntoRaw; see FromRaw.
func CStrFromRaw(r Raw) CStr {
	return CStr{b: payload(checkRaw(r))}
}

func checkRaw(r Raw) *header {
	h := (*header)(r.p)
	if invariants.Enabled {
		invariants.Assert(h != nil, "nil raw path buffer")
		invariants.Assert(h.lenWithNul != 0, "raw path buffer with zero length")
		p := payload(h)
		invariants.Assert(p[len(p)-1] == 0, "raw path buffer is not nul terminated")
	}
	return h
}
