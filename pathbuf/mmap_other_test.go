//go:build !linux && !darwin

package pathbuf_test

import "github.com/jmgilman/go/oserr/alloc"

func mmapOrHeap() alloc.Allocator { return alloc.Heap{} }
