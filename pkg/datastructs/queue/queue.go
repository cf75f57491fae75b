package queue

// Queue is a FIFO queue of fixed scalar elements.
type Queue interface {
	// Push adds an item to the tail of the queue.
	Push(item Value) error

	// Pop removes and returns the item at the head of the queue.
	Pop() (Value, error)

	// Len returns the number of live items.
	Len() int

	// Cap returns the number of allocated slots.
	Cap() int
}
