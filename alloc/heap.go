package alloc

import (
	"unsafe"

	"github.com/jmgilman/go/oserr/internal/invariants"
)

// wordSize is the alignment the Go heap guarantees for a []uint64 backing
// array.
const wordSize = unsafe.Sizeof(uint64(0))

// Heap allocates from the Go heap.
//
// Blocks stay alive as long as an unsafe.Pointer into them is reachable.
// Deallocate does not free anything; with the invariants build tag it
// overwrites the block so a use after free reads garbage.
type Heap struct{}

// Allocate implements Allocator. Zero-sized layouts return nil.
func (Heap) Allocate(l Layout) unsafe.Pointer {
	if l.size == 0 || l.IsZero() {
		return nil
	}

	if l.align <= wordSize {
		words := make([]uint64, (l.size+wordSize-1)/wordSize)
		return unsafe.Pointer(unsafe.SliceData(words))
	}

	// Over-allocate and pick the first aligned address. The interior pointer
	// keeps the whole backing array reachable.
	raw := make([]byte, l.size+l.align-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := (l.align - base%l.align) % l.align
	return unsafe.Pointer(&raw[off])
}

// Deallocate implements Allocator.
func (Heap) Deallocate(p unsafe.Pointer, l Layout) {
	if invariants.Enabled && p != nil {
		b := unsafe.Slice((*byte)(p), l.size)
		for i := range b {
			b[i] = 0xdb
		}
	}
}
