//go:build linux || darwin

package alloc

import (
	"context"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

var pageSize = uintptr(os.Getpagesize())

// Mmap allocates each block as an anonymous private mapping.
//
// Blocks live outside the Go heap: they are never scanned or moved by the
// garbage collector and must not hold Go pointers. Every block occupies at
// least one page, so Mmap suits long-lived or large values.
type Mmap struct{}

func mappedLen(l Layout) uintptr {
	return (l.size + pageSize - 1) &^ (pageSize - 1)
}

// Allocate implements Allocator. Alignments above the page size and
// zero-sized layouts return nil.
func (Mmap) Allocate(l Layout) unsafe.Pointer {
	if l.size == 0 || l.IsZero() || l.align > pageSize {
		return nil
	}

	b, err := unix.Mmap(-1, 0, int(mappedLen(l)), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		logger().Debug(context.Background(), "mmap failed", "size", l.size, "error", err)
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// Deallocate implements Allocator.
func (Mmap) Deallocate(p unsafe.Pointer, l Layout) {
	if p == nil {
		return
	}

	n := int(mappedLen(l))
	if err := unix.Munmap(unsafe.Slice((*byte)(p), n)); err != nil {
		// The block is still mapped, so nothing was corrupted; it leaks.
		logger().Warn(context.Background(), "munmap failed", "size", l.size, "error", err)
	}
}
