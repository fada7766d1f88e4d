// Package alloc describes memory layouts and the allocation capability that
// packed values are built on.
//
// A Layout is a (size, alignment) pair. Layouts are computed with checked
// arithmetic: a request whose size cannot be represented is reported as
// ErrLayout, never silently truncated.
//
// An Allocator hands out raw memory for a Layout and takes it back given the
// same Layout. The package provides:
//
//   - Heap: memory from the Go heap. Deallocate is a no-op and the garbage
//     collector reclaims the block once nothing references it.
//   - Mmap (Linux and Darwin): anonymous private mappings, unmapped on
//     Deallocate. Memory is invisible to the garbage collector.
//   - Counting: a wrapper that records every live block and panics on a
//     double free or a layout mismatch. Used by tests to check that every
//     allocation is matched by exactly one deallocation.
//   - Limited: a wrapper that refuses requests once a budget is spent.
//
// # Allocation failure
//
// An allocator that returns nil for a valid Layout is treated as an
// unrecoverable environment failure. Callers report it with HandleAllocError,
// which runs the process-wide handler and never returns. Compare this with a
// Layout that cannot be computed at all, which is an input problem and is
// returned to the caller as an ordinary error.
package alloc
