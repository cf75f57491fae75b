package queue

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// resize applies the load policy after a push or pop. At most one action:
//   - shrink to capacity/2 when 4*size <= capacity
//   - grow to capacity*2 (clamped to the ceiling) when size == capacity
func (q *RingQueue) resize() error {
	if err := Verify(q); err != nil {
		return err
	}

	switch {
	case 4*q.size <= q.capacity:
		return q.reallocate(q.capacity / 2)
	case q.size == q.capacity:
		return q.reallocate(q.grown())
	default:
		return nil
	}
}

// grown returns the capacity the next grow step would reach.
func (q *RingQueue) grown() int {
	if q.capacity == 0 {
		return 1
	}
	next := q.capacity * 2
	if next > q.ceiling {
		next = q.ceiling
	}
	return next
}

// reallocate moves the live elements into a fresh slab of n slots, starting
// at index 0. On allocation failure the current slab is left untouched.
func (q *RingQueue) reallocate(n int) error {
	if n == q.capacity {
		return nil
	}

	next, err := q.allocate(n)
	if err != nil {
		return err
	}

	for i := 0; i < q.size; i++ {
		next[i] = q.storage[(q.head+i)%q.capacity]
	}
	for i := q.size; i < n; i++ {
		next[i] = Poison
	}

	prev, prevCap := q.storage, q.capacity
	q.storage = next
	q.capacity = n
	q.head = 0
	q.alloc.Free(prev)

	q.log.Debug("queue resized",
		zap.Int("from", prevCap),
		zap.Int("to", n),
		zap.Int("size", q.size),
	)
	return Verify(q)
}

// allocate obtains a slab of exactly n slots.
func (q *RingQueue) allocate(n int) ([]Value, error) {
	s, err := q.alloc.Alloc(n)
	if err != nil {
		return nil, errors.WithMessagef(ErrAllocationFailure, "%d slots: %v", n, err)
	}
	if len(s) != n {
		return nil, errors.WithMessagef(ErrAllocationFailure, "%d slots: got %d", n, len(s))
	}
	if s == nil {
		s = []Value{}
	}
	return s, nil
}

func ceilingReached(ceiling int) error {
	return errors.WithMessagef(ErrInvalidCapacity, "ceiling of %d slots reached", ceiling)
}
