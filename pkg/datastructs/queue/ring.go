package queue

import (
	"go.uber.org/zap"
)

var _ Queue = (*RingQueue)(nil)

// RingQueue is a self-verifying FIFO queue over a circular slab of slots.
// Slots outside the live region hold Poison; every mutation re-verifies the
// whole slab and surfaces the first broken invariant.
// It is NOT thread-safe.
type RingQueue struct {
	storage  []Value // owned slab, nil when absent
	capacity int     // allocated slot count
	size     int     // live element count
	head     int     // index of the oldest live element

	ceiling int // per-queue capacity limit, at most MaxCapacity
	alloc   Allocator
	log     *zap.Logger
}

// Option configures a RingQueue.
type Option func(*RingQueue)

// WithLogger sets the logger used for resize and failure events.
func WithLogger(l *zap.Logger) Option {
	return func(q *RingQueue) {
		if l != nil {
			q.log = l
		}
	}
}

// WithAllocator replaces the slab allocator.
func WithAllocator(a Allocator) Option {
	return func(q *RingQueue) {
		if a != nil {
			q.alloc = a
		}
	}
}

// WithMaxCapacity lowers the capacity ceiling of the queue.
// n must lie in [1, MaxCapacity].
func WithMaxCapacity(n int) Option {
	return func(q *RingQueue) {
		q.ceiling = n
	}
}

// New creates a queue with the given initial capacity and all slots poisoned.
func New(capacity int, opts ...Option) (*RingQueue, error) {
	q := &RingQueue{
		ceiling: MaxCapacity,
		alloc:   PoolAllocator{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}

	if capacity <= 0 || q.ceiling < 1 || q.ceiling > MaxCapacity {
		return nil, fail("new", ErrInvalidArgument)
	}
	if capacity > q.ceiling {
		return nil, fail("new", ErrInvalidCapacity)
	}

	storage, err := q.allocate(capacity)
	if err != nil {
		return nil, fail("new", err)
	}
	for i := range storage {
		storage[i] = Poison
	}

	q.storage = storage
	q.capacity = capacity

	if err := Verify(q); err != nil {
		return nil, fail("new", err)
	}
	return q, nil
}

// Push appends v at the tail. Pushing Poison corrupts the queue.
func (q *RingQueue) Push(v Value) error {
	if err := Verify(q); err != nil {
		return fail("push", err)
	}

	// Full only at capacity 0, or when an earlier grow was refused.
	if q.size == q.capacity {
		next := q.grown()
		if next == q.capacity {
			return fail("push", ceilingReached(q.ceiling))
		}
		if err := q.reallocate(next); err != nil {
			return fail("push", err)
		}
	}

	q.storage[(q.head+q.size)%q.capacity] = v
	q.size++

	if err := q.recheck("push"); err != nil {
		return err
	}
	return fail("push", q.resize())
}

// Pop removes and returns the oldest element.
// If the shrink that follows fails, the element is still returned with the error.
func (q *RingQueue) Pop() (Value, error) {
	var v Value
	err := q.PopInto(&v)
	return v, err
}

// PopInto removes the oldest element and stores it in dst.
func (q *RingQueue) PopInto(dst *Value) error {
	if dst == nil {
		return fail("pop", ErrInvalidArgument)
	}
	if err := Verify(q); err != nil {
		return fail("pop", err)
	}
	if q.size == 0 {
		return fail("pop", ErrEmptyQueue)
	}

	*dst = q.storage[q.head]
	q.storage[q.head] = Poison
	q.head = (q.head + 1) % q.capacity
	q.size--

	if err := q.recheck("pop"); err != nil {
		return err
	}
	return fail("pop", q.resize())
}

// Destroy releases the storage and resets the queue to empty.
// A queue that fails verification keeps its storage and the failure is
// returned; the slab is leaked rather than released in an unknown state.
func (q *RingQueue) Destroy() error {
	if err := Verify(q); err != nil {
		if q != nil {
			q.log.Warn("queue destroy refused, storage retained", zap.Error(err))
		}
		return fail("destroy", err)
	}

	q.alloc.Free(q.storage)
	q.storage = nil
	q.capacity = 0
	q.size = 0
	q.head = 0
	return nil
}

// Len returns the number of live elements.
func (q *RingQueue) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Cap returns the number of allocated slots.
func (q *RingQueue) Cap() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// Head returns the slot index of the oldest element.
func (q *RingQueue) Head() int {
	if q == nil {
		return 0
	}
	return q.head
}

// IsEmpty reports whether the queue has no live elements.
func (q *RingQueue) IsEmpty() bool { return q.Len() == 0 }

// recheck verifies the queue after a mutation and logs a violation.
func (q *RingQueue) recheck(op string) error {
	err := Verify(q)
	if err != nil {
		q.log.Error("queue invariant violated after mutation",
			zap.String("op", op),
			zap.Int("capacity", q.capacity),
			zap.Int("size", q.size),
			zap.Int("head", q.head),
			zap.Error(err),
		)
	}
	return fail(op, err)
}
