package queue

import (
	"github.com/pkg/errors"
)

// Kind identifies why a queue operation or verification failed.
type Kind uint8

const (
	KindOK                    Kind = iota // No failure
	KindInvalidData                       // Storage is absent
	KindInvalidSize                       // Size is negative or larger than capacity
	KindInvalidCapacity                   // Capacity is negative or larger than the ceiling
	KindUnexpectedPoisonValue             // Poison found inside the live region
	KindUnexpectedNormalValue             // Non-poison value found outside the live region
	KindInvalidArgument                   // Invalid argument given to the operation
	KindEmptyQueue                        // No elements to pop
	KindAllocationFailure                 // Slab could not be obtained
	KindInvalidHead                       // Head is outside [0, capacity)
)

var kindNames = [...]string{
	KindOK:                    "ok",
	KindInvalidData:           "invalid data",
	KindInvalidSize:           "invalid size",
	KindInvalidCapacity:       "invalid capacity",
	KindUnexpectedPoisonValue: "unexpected poison value",
	KindUnexpectedNormalValue: "unexpected normal value",
	KindInvalidArgument:       "invalid argument",
	KindEmptyQueue:            "empty queue",
	KindAllocationFailure:     "allocation failure",
	KindInvalidHead:           "invalid head",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error implements error so a Kind can be returned and matched directly.
func (k Kind) Error() string {
	return "queue: " + k.String()
}

// Sentinel errors, one per failure kind.
var (
	ErrInvalidData           error = KindInvalidData
	ErrInvalidSize           error = KindInvalidSize
	ErrInvalidCapacity       error = KindInvalidCapacity
	ErrUnexpectedPoisonValue error = KindUnexpectedPoisonValue
	ErrUnexpectedNormalValue error = KindUnexpectedNormalValue
	ErrInvalidArgument       error = KindInvalidArgument
	ErrEmptyQueue            error = KindEmptyQueue
	ErrAllocationFailure     error = KindAllocationFailure
	ErrInvalidHead           error = KindInvalidHead
)

// KindOf returns the failure kind carried by err.
// A nil error yields KindOK; ok is false when err carries no Kind.
func KindOf(err error) (kind Kind, ok bool) {
	if err == nil {
		return KindOK, true
	}
	if errors.As(err, &kind) {
		return kind, true
	}
	return KindOK, false
}

// fail annotates a failure kind with the operation that produced it.
func fail(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, op)
}
