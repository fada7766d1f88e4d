package pathbuf

import (
	"unsafe"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/internal/invariants"
)

// header prefixes the path bytes.
type header struct {
	lenWithNul uintptr
	osCode     int32
}

// headerAlign is the alignment of every packed buffer. It is fixed rather
// than taken from header, whose natural alignment is 4 on 32-bit platforms.
const headerAlign = 8

// headerSize is the payload offset: the header rounded up to headerAlign, so
// no padding sits between header and payload.
const headerSize = (unsafe.Sizeof(header{}) + headerAlign - 1) &^ (headerAlign - 1)

// layoutForLen returns the Layout of a packed buffer whose payload, including
// the terminator, is n bytes.
func layoutForLen(n uintptr) (alloc.Layout, error) {
	path, err := alloc.Array[byte](n)
	if err != nil {
		return alloc.Layout{}, err
	}

	hdr, err := alloc.FromSizeAlign(unsafe.Sizeof(header{}), headerAlign)
	if err != nil {
		return alloc.Layout{}, err
	}

	full, offset, err := hdr.PadToAlign().Extend(path)
	if err != nil {
		return alloc.Layout{}, err
	}
	invariants.Assert(offset == headerSize, "payload offset %d, header size %d", offset, headerSize)
	invariants.Assert(full.Size() != 0, "zero-sized packed buffer layout")
	return full, nil
}

func payload(h *header) []byte {
	return unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(h), headerSize)), h.lenWithNul)
}
