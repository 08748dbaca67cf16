package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hnimtadd/vgacon"
	"github.com/hnimtadd/vgacon/console/demo"
)

// runHeadless plays the script without pacing and writes the final screen
// to out.
func runHeadless(ctx context.Context, opts vgacon.Options, out io.Writer) error {
	opts.Waiter = demo.NopWaiter{}
	sys := vgacon.NewSystem(opts)
	if err := sys.Run(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, sys.DumpString())
	return err
}
