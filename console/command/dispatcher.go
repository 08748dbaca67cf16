package command

import (
	"fmt"
	"slices"

	"github.com/hnimtadd/vgacon/console"
	"github.com/hnimtadd/vgacon/console/ansi"
	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/linebuf"
	"github.com/hnimtadd/vgacon/console/platform"
	"github.com/hnimtadd/vgacon/console/utils"
	"github.com/hnimtadd/vgacon/logger"
)

const (
	DefaultProduct = "LudvigOS"
	DefaultVersion = "v1.0"
)

// State of the dispatcher. Submit moves Idle to Executing and back before
// it returns; Halted is terminal.
type State int

const (
	StateIdle State = iota
	StateExecuting
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExecuting:
		return "executing"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type (
	Options struct {
		Console  *console.Console
		Rebooter platform.Rebooter

		// The command table, DefaultTable when nil. It is copied, later
		// changes to the slice are not seen.
		Table Table

		// Product and Version make up the version string and the prompt.
		Product string
		Version string

		Logger logger.Logger
	}

	// Dispatcher owns the input line and runs completed lines against its
	// command table.
	Dispatcher struct {
		console  *console.Console
		rebooter platform.Rebooter
		table    Table
		line     linebuf.Buffer
		state    State

		product string
		version string

		logger logger.Logger
	}
)

func NewDispatcher(opts Options) *Dispatcher {
	table := opts.Table
	if table == nil {
		table = DefaultTable()
	}
	product := opts.Product
	if product == "" {
		product = DefaultProduct
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	return &Dispatcher{
		console:  opts.Console,
		rebooter: opts.Rebooter,
		table:    slices.Clone(table),
		product:  product,
		version:  version,
		logger:   logger.OrDefault(opts.Logger),
	}
}

// Prompt prints the input prompt.
func (d *Dispatcher) Prompt() {
	d.console.PrintText(d.product+"> ", color.Prompt)
}

// Key feeds one keystroke. A line feed echoes the newline and submits the
// line; any other byte is buffered and echoed. Bytes past the line
// capacity are dropped without echo.
func (d *Dispatcher) Key(c byte) {
	if d.state == StateHalted {
		d.logger.Debug("ignoring keystroke, dispatcher halted")
		return
	}
	if c == ansi.C0.LF {
		d.console.PrintChar(c, color.Default)
		d.Submit()
		return
	}
	if err := d.line.Append(c); err != nil {
		d.logger.Warn("dropping keystroke", "char", string(rune(c)), "err", err)
		return
	}
	d.console.PrintChar(c, color.Input)
}

// SubmitLine replaces the input line with line and submits it. Bytes past
// the line capacity are dropped.
func (d *Dispatcher) SubmitLine(line string) {
	if d.state == StateHalted {
		return
	}
	d.line.Reset()
	for i := 0; i < len(line); i++ {
		if err := d.line.Append(line[i]); err != nil {
			d.logger.Warn("truncating line", "len", len(line), "err", err)
			break
		}
	}
	d.Submit()
}

// Submit runs the buffered line. An empty line does nothing. Otherwise a
// newline is printed, the first command whose name equals the line runs
// (or the unknown-command message is printed), and the line is reset.
func (d *Dispatcher) Submit() {
	if d.state == StateHalted {
		return
	}
	utils.Assert(d.state == StateIdle, "command: submit while executing")

	if d.line.IsEmpty() {
		return
	}
	d.state = StateExecuting
	defer func() {
		d.line.Reset()
		if d.state == StateExecuting {
			d.state = StateIdle
		}
	}()
	line := d.line.Text()

	d.console.Print("\n", color.Prompt)

	if cmd, ok := d.table.Lookup(line); ok {
		d.logger.Debug("dispatching command", "command", cmd.Name)
		cmd.Action(d, line)
	} else {
		d.logger.Debug("unknown command", "line", line)
		unknown(d, line)
	}
}

// VersionString is the product name followed by its version.
func (d *Dispatcher) VersionString() string {
	return d.product + " " + d.version
}

func (d *Dispatcher) State() State {
	return d.state
}

func (d *Dispatcher) Halted() bool {
	return d.state == StateHalted
}

// Line returns the pending input line.
func (d *Dispatcher) Line() *linebuf.Buffer {
	return &d.line
}

func (d *Dispatcher) Console() *console.Console {
	return d.console
}

func (d *Dispatcher) Table() Table {
	return slices.Clone(d.table)
}
