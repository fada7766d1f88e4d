package alloc

import (
	"sync"
	"unsafe"
)

// Limited wraps an Allocator and refuses allocations once a byte budget is
// spent. Freed bytes are returned to the budget.
type Limited struct {
	inner Allocator

	mu        sync.Mutex
	remaining uintptr
}

// NewLimited returns a Limited allowing up to budget live bytes. A nil inner
// uses Heap.
func NewLimited(inner Allocator, budget uintptr) *Limited {
	if inner == nil {
		inner = Heap{}
	}
	return &Limited{inner: inner, remaining: budget}
}

// Allocate implements Allocator. It returns nil when l does not fit in the
// remaining budget.
func (a *Limited) Allocate(l Layout) unsafe.Pointer {
	a.mu.Lock()
	if l.size > a.remaining {
		a.mu.Unlock()
		return nil
	}
	a.remaining -= l.size
	a.mu.Unlock()

	p := a.inner.Allocate(l)
	if p == nil {
		a.mu.Lock()
		a.remaining += l.size
		a.mu.Unlock()
	}
	return p
}

// Deallocate implements Allocator.
func (a *Limited) Deallocate(p unsafe.Pointer, l Layout) {
	a.inner.Deallocate(p, l)

	a.mu.Lock()
	a.remaining += l.size
	a.mu.Unlock()
}

// Remaining returns the unspent budget in bytes.
func (a *Limited) Remaining() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remaining
}
