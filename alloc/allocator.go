package alloc

import (
	"sync/atomic"
	"unsafe"
)

// Allocator is the raw allocate/deallocate capability.
//
// Allocate returns a block of at least l.Size() bytes aligned to l.Align(),
// or nil if the request cannot be satisfied. Deallocate returns a block to the
// allocator; l must be identical to the Layout it was allocated with.
type Allocator interface {
	Allocate(l Layout) unsafe.Pointer
	Deallocate(p unsafe.Pointer, l Layout)
}

type allocatorBox struct {
	a Allocator
}

var defaultAllocator atomic.Pointer[allocatorBox]

func init() {
	defaultAllocator.Store(&allocatorBox{a: Heap{}})
}

// Default returns the process-wide allocator. It is Heap unless changed with
// SetDefault.
func Default() Allocator {
	return defaultAllocator.Load().a
}

// SetDefault replaces the process-wide allocator and returns the previous one.
//
// Blocks are always freed through the allocator that produced them, so
// changing the default does not affect values built before the call.
func SetDefault(a Allocator) Allocator {
	if a == nil {
		panic("alloc: SetDefault with nil allocator")
	}
	return defaultAllocator.Swap(&allocatorBox{a: a}).a
}
