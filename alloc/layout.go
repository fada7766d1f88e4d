package alloc

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// MaxSize is the largest size a Layout may describe once rounded up to its
// alignment.
const MaxSize = uintptr(math.MaxInt)

// ErrLayout is returned when a size or alignment cannot form a valid Layout.
var ErrLayout = errors.New("invalid layout")

// Layout describes the size and alignment of a block of memory.
type Layout struct {
	size  uintptr
	align uintptr
}

// FromSizeAlign returns a Layout for size bytes aligned to align.
//
// align must be a non-zero power of two and size rounded up to align must not
// exceed MaxSize.
func FromSizeAlign(size, align uintptr) (Layout, error) {
	if align == 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("%w: alignment %d is not a power of two", ErrLayout, align)
	}
	if size > MaxSize-(align-1) {
		return Layout{}, fmt.Errorf("%w: size %d overflows with alignment %d", ErrLayout, size, align)
	}
	return Layout{size: size, align: align}, nil
}

// For returns the Layout of a value of type T.
func For[T any]() Layout {
	var v T
	return Layout{size: unsafe.Sizeof(v), align: unsafe.Alignof(v)}
}

// Array returns the Layout of n contiguous values of type T.
func Array[T any](n uintptr) (Layout, error) {
	elem := For[T]()
	if elem.size != 0 && n > MaxSize/elem.size {
		return Layout{}, fmt.Errorf("%w: array of %d elements of size %d overflows", ErrLayout, n, elem.size)
	}
	return FromSizeAlign(elem.size*n, elem.align)
}

// Size returns the size in bytes.
func (l Layout) Size() uintptr { return l.size }

// Align returns the alignment in bytes.
func (l Layout) Align() uintptr { return l.align }

// IsZero reports whether l is the zero Layout, which is not a valid request.
func (l Layout) IsZero() bool { return l.align == 0 }

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.align)
}

// paddingFor returns the padding needed after l so the next byte is aligned
// to align.
func (l Layout) paddingFor(align uintptr) uintptr {
	rounded := (l.size + align - 1) &^ (align - 1)
	return rounded - l.size
}

// PadToAlign returns l with its size rounded up to a multiple of its alignment.
func (l Layout) PadToAlign() Layout {
	return Layout{size: l.size + l.paddingFor(l.align), align: l.align}
}

// Extend returns a Layout for l followed by next, along with the offset of
// next within the result. The combined alignment is the larger of the two.
// Trailing padding is not added; use PadToAlign for that.
func (l Layout) Extend(next Layout) (Layout, uintptr, error) {
	align := max(l.align, next.align)

	pad := l.paddingFor(next.align)
	if l.size > MaxSize-pad {
		return Layout{}, 0, fmt.Errorf("%w: extending %s by %s overflows", ErrLayout, l, next)
	}
	offset := l.size + pad

	if next.size > MaxSize-offset {
		return Layout{}, 0, fmt.Errorf("%w: extending %s by %s overflows", ErrLayout, l, next)
	}

	combined, err := FromSizeAlign(offset+next.size, align)
	if err != nil {
		return Layout{}, 0, err
	}
	return combined, offset, nil
}
