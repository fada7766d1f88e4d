//go:build unix && !linux && !darwin

package main

import (
	"fmt"

	"github.com/jmgilman/go/oserr/alloc"
)

func newAllocator(name string) (alloc.Allocator, error) {
	switch name {
	case "heap":
		return alloc.Heap{}, nil
	case "mmap":
		return nil, fmt.Errorf("allocator %q is not supported on this platform", name)
	default:
		return nil, fmt.Errorf("invalid allocator %q", name)
	}
}
