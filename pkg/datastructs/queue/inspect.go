package queue

// Slot is a copy of one storage slot.
type Slot struct {
	Value    Value `json:"value"`
	Poisoned bool  `json:"poisoned"`
}

// Snapshot is a read-only copy of the queue state for diagnostics.
type Snapshot struct {
	Capacity   int    `json:"capacity"`
	Size       int    `json:"size"`
	Head       int    `json:"head"`
	HasStorage bool   `json:"has_storage"`
	Slots      []Slot `json:"slots,omitempty"`
}

// Inspect copies the queue fields and every slot, poisoned or not.
// Slots are left empty when storage is absent or its length disagrees with
// the recorded capacity.
func (q *RingQueue) Inspect() Snapshot {
	if q == nil {
		return Snapshot{}
	}

	s := Snapshot{
		Capacity:   q.capacity,
		Size:       q.size,
		Head:       q.head,
		HasStorage: q.storage != nil,
	}
	if q.storage == nil || len(q.storage) != q.capacity {
		return s
	}

	s.Slots = make([]Slot, len(q.storage))
	for i, v := range q.storage {
		s.Slots[i] = Slot{Value: v, Poisoned: v == Poison}
	}
	return s
}

// Values returns the live elements in FIFO order.
func (q *RingQueue) Values() []Value {
	if Verify(q) != nil {
		return nil
	}

	out := make([]Value, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.storage[(q.head+i)%q.capacity]
	}
	return out
}
