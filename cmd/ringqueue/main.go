package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ringqueue",
		Short:         "Self-verifying ring queue driver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newServeCmd())
	return root
}

// exitCode maps queue failures to their kind number.
func exitCode(err error) int {
	if kind, ok := queue.KindOf(err); ok && kind != queue.KindOK {
		return int(kind)
	}
	return 1
}
