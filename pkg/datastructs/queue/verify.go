package queue

// Verify reports the first violated invariant of q, or nil when q is
// consistent. It never mutates q and is safe on a nil or destroyed queue.
//
// Checks run in order: queue present, storage present, capacity bounds,
// size bounds, head bounds, then a scan of every slot.
func Verify(q *RingQueue) error {
	if q == nil {
		return ErrInvalidArgument
	}
	if q.storage == nil {
		return ErrInvalidData
	}
	if q.capacity < 0 || q.capacity > q.limit() || len(q.storage) != q.capacity {
		return ErrInvalidCapacity
	}
	if q.size < 0 || q.size > q.capacity {
		return ErrInvalidSize
	}
	if q.head < 0 || (q.capacity > 0 && q.head >= q.capacity) || (q.capacity == 0 && q.head != 0) {
		return ErrInvalidHead
	}

	for i, v := range q.storage {
		if q.live(i) {
			if v == Poison {
				return ErrUnexpectedPoisonValue
			}
		} else if v != Poison {
			return ErrUnexpectedNormalValue
		}
	}
	return nil
}

// Verify reports the first violated invariant of q, or nil.
func (q *RingQueue) Verify() error { return Verify(q) }

// live reports whether slot i lies in the live region. The region starts at
// head and may wrap past the end of the slab back to index 0, so a slot is
// classified by its distance from head rather than by its position alone.
func (q *RingQueue) live(i int) bool {
	offset := i - q.head
	if offset < 0 {
		offset += q.capacity
	}
	return offset < q.size
}

// limit returns the effective capacity ceiling.
func (q *RingQueue) limit() int {
	if q.ceiling < 1 || q.ceiling > MaxCapacity {
		return MaxCapacity
	}
	return q.ceiling
}
