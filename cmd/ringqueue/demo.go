package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-ringqueue/pkg/diag/dump"
)

type demoOptions struct {
	capacity int
	count    int
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Push and pop a run of values, then dump the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.capacity, "capacity", 1, "initial capacity")
	cmd.Flags().IntVar(&opts.count, "count", 16, "number of values to push and pop")
	return cmd
}

// runDemo pushes 1..count, pops them back checking FIFO order, dumps the
// queue and destroys it.
func runDemo(w io.Writer, opts demoOptions) error {
	q, err := queue.New(opts.capacity)
	if err != nil {
		return err
	}

	for i := 1; i <= opts.count; i++ {
		if err := q.Push(i); err != nil {
			return errors.WithMessagef(err, "push %d", i)
		}
	}
	for i := 1; i <= opts.count; i++ {
		v, err := q.Pop()
		if err != nil {
			return errors.WithMessagef(err, "pop %d", i)
		}
		if v != i {
			return errors.Errorf("pop %d: got %d", i, v)
		}
	}

	if err := dump.Queue(w, "demo", q); err != nil {
		return err
	}
	if err := q.Destroy(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "Queue!")
	return err
}
