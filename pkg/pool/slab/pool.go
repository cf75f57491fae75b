package slab

import (
	"errors"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 2  // 4 slots
	Steps      = 16 // 4 to 128K slots

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)
)

// ErrSize is returned when the requested slab size is outside [0, MaxSize].
var ErrSize = errors.New("slab: size out of range")

// Pool hands out int slabs from power-of-two size buckets.
type Pool struct {
	calls   [Steps]uint64
	buckets [Steps]sync.Pool
}

// New creates a new slab pool.
func New() *Pool {
	p := &Pool{}
	for i := range p.buckets {
		size := MinSize << i
		p.buckets[i].New = func() any {
			s := make([]int, size)
			return &s
		}
	}
	return p
}

// Get returns a slab of exactly n slots. The contents are unspecified.
func (p *Pool) Get(n int) ([]int, error) {
	if n < 0 || n > MaxSize {
		return nil, ErrSize
	}
	if n == 0 {
		return []int{}, nil
	}

	idx := SizeToIndex(n)
	atomic.AddUint64(&p.calls[idx], 1)

	s := p.buckets[idx].Get().(*[]int)
	return (*s)[:n], nil
}

// Put returns a slab to the pool. Slabs not obtained from Get are dropped
// unless their capacity matches a bucket exactly.
func (p *Pool) Put(s []int) {
	c := cap(s)
	if c < MinSize {
		return
	}

	idx := SizeToIndex(c)
	if idx >= Steps || BucketSize(idx) != c {
		return
	}

	s = s[:c]
	p.buckets[idx].Put(&s)
}

// Stats returns get counts per bucket.
func (p *Pool) Stats() [Steps]uint64 {
	var result [Steps]uint64
	for i := range p.calls {
		result[i] = atomic.LoadUint64(&p.calls[i])
	}
	return result
}

// SizeToIndex returns the bucket index for a given size.
func SizeToIndex(n int) int {
	n--
	n >>= MinBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}

var defaultPool = New()

// Get returns a slab of exactly n slots from the default pool.
func Get(n int) ([]int, error) { return defaultPool.Get(n) }

// Put returns a slab to the default pool.
func Put(s []int) { defaultPool.Put(s) }

// Stats returns get counts per bucket of the default pool.
func Stats() [Steps]uint64 { return defaultPool.Stats() }
