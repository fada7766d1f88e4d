package alloc

import (
	"context"
	"fmt"
	"sync"
	"unsafe"
)

// Counting wraps an Allocator and tracks every live block.
//
// Deallocate panics if the pointer was not handed out by this Counting or if
// the Layout differs from the one used to allocate it. Counting is safe for
// concurrent use.
type Counting struct {
	inner Allocator

	mu     sync.Mutex
	live   map[unsafe.Pointer]Layout
	allocs int
	frees  int
	bytes  uintptr
}

// NewCounting returns a Counting that forwards to inner. A nil inner uses Heap.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Heap{}
	}
	return &Counting{inner: inner, live: make(map[unsafe.Pointer]Layout)}
}

// Allocate implements Allocator.
func (c *Counting) Allocate(l Layout) unsafe.Pointer {
	p := c.inner.Allocate(l)
	if p == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.live[p] = l
	c.allocs++
	c.bytes += l.size
	return p
}

// Deallocate implements Allocator.
func (c *Counting) Deallocate(p unsafe.Pointer, l Layout) {
	c.mu.Lock()
	got, ok := c.live[p]
	if !ok {
		c.mu.Unlock()
		panic(fmt.Sprintf("alloc: deallocate of unknown or already freed pointer %p", p))
	}
	if got != l {
		c.mu.Unlock()
		panic(fmt.Sprintf("alloc: deallocate of %p with %s, allocated with %s", p, l, got))
	}
	delete(c.live, p)
	c.frees++
	c.bytes -= l.size
	c.mu.Unlock()

	c.inner.Deallocate(p, l)
}

// Live returns the number of blocks allocated and not yet freed.
func (c *Counting) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// LiveBytes returns the total size of live blocks.
func (c *Counting) LiveBytes() uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Allocs returns the number of successful allocations.
func (c *Counting) Allocs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Frees returns the number of deallocations.
func (c *Counting) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// Owns reports whether p is a live block of this allocator.
func (c *Counting) Owns(p unsafe.Pointer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.live[p]
	return ok
}

// CheckLeaks returns an error describing the live blocks, if any, and logs
// each one at debug level.
func (c *Counting) CheckLeaks() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.live) == 0 {
		return nil
	}
	for p, l := range c.live {
		logger().Debug(context.Background(), "leaked block", "ptr", fmt.Sprintf("%p", p), "size", l.size, "align", l.align)
	}
	return fmt.Errorf("%d blocks (%d bytes) still allocated", len(c.live), c.bytes)
}
