// Package dump renders queue snapshots for humans.
package dump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

const (
	indent     = "  "
	slotIndent = "    "
	poisonNote = " (POISON VALUE)"
)

// Fprint writes a dump of s to w. verr is the result of verifying the queue
// the snapshot was taken from; slots are not rendered when it reports absent
// storage or an unreliable capacity.
func Fprint(w io.Writer, label string, s queue.Snapshot, verr error) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Queue[%s]:\n", label)
	fmt.Fprintf(&buf, "%s%-8s: %d\n", indent, "Capacity", s.Capacity)
	fmt.Fprintf(&buf, "%s%-8s: %d\n", indent, "Size", s.Size)
	fmt.Fprintf(&buf, "%s%-8s: %d\n", indent, "Head", s.Head)
	fmt.Fprintf(&buf, "%s%-8s: %s\n", indent, "Status", status(verr))

	buf.WriteString(indent + "Data")
	if !renderSlots(verr) || s.Slots == nil {
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}
	buf.WriteString(":\n")

	for i, slot := range s.Slots {
		fmt.Fprintf(&buf, "%s[%03d] %d", slotIndent, i, slot.Value)
		if slot.Poisoned {
			buf.WriteString(poisonNote)
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}

// String returns the dump as a string.
func String(label string, s queue.Snapshot, verr error) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, label, s, verr)
	return buf.String()
}

// Queue verifies q and dumps it to w.
func Queue(w io.Writer, label string, q *queue.RingQueue) error {
	return Fprint(w, label, q.Inspect(), q.Verify())
}

func renderSlots(verr error) bool {
	kind, ok := queue.KindOf(verr)
	if !ok {
		return true
	}
	return kind != queue.KindInvalidData && kind != queue.KindInvalidCapacity
}

func status(verr error) string {
	if verr == nil {
		return queue.KindOK.String()
	}
	if kind, ok := queue.KindOf(verr); ok {
		return kind.String()
	}
	return "error: " + verr.Error()
}
