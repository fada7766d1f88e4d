package pathbuf

import "github.com/jmgilman/go/oserr/alloc"

const (
	HeaderSize  = headerSize
	HeaderAlign = headerAlign
)

var LayoutForLen = layoutForLen

// BuildWithLen packs b with a caller-chosen terminated length, bypassing the
// length computation in FromPathBytes.
func BuildWithLen[A alloc.Allocator](a A, b []byte, lenWithNul uintptr) (Buf[A], error) {
	return build(a, b, lenWithNul)
}
