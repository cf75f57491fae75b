package queue

// Value is the element type stored by RingQueue.
type Value = int

const (
	// Poison marks a slot outside the live region. A pushed value equal to
	// Poison is indistinguishable from an empty slot and breaks verification.
	Poison Value = 0xC0FFEE

	// MaxCapacity is the system-wide ceiling on slot count.
	MaxCapacity = 100000
)
