package queue

import (
	"github.com/huynhanx03/go-ringqueue/pkg/pool/slab"
)

// Allocator obtains and releases the slabs backing a RingQueue.
type Allocator interface {
	// Alloc returns a slab of exactly n slots. The contents are unspecified.
	Alloc(n int) ([]Value, error)

	// Free releases a slab previously returned by Alloc.
	Free(s []Value)
}

// PoolAllocator allocates slabs from the shared slab pool.
type PoolAllocator struct{}

var _ Allocator = PoolAllocator{}

func (PoolAllocator) Alloc(n int) ([]Value, error) { return slab.Get(n) }
func (PoolAllocator) Free(s []Value)               { slab.Put(s) }
