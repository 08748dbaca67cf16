package vgacon

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/hnimtadd/vgacon/console"
	"github.com/hnimtadd/vgacon/console/command"
	"github.com/hnimtadd/vgacon/console/demo"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/console/platform"
	"github.com/hnimtadd/vgacon/logger"
)

// System wires the console pieces together: a surface, the console that
// draws into it, the dispatcher that owns the input line, and the demo
// driver that types into the dispatcher.
type System struct {
	// The display surface. Everything the system prints ends up here.
	surface display.Surface

	console    *console.Console
	dispatcher *command.Dispatcher
	driver     *demo.Driver

	logger logger.Logger
}

type Options struct {
	// Surface to draw into. An 80x25 in-memory grid when nil.
	Surface display.Surface

	// Port receives the reboot request. A platform.Recorder when nil.
	Port platform.Port

	// Waiter paces the demo. No pacing when nil.
	Waiter demo.Waiter

	Script       []string
	KeyDelay     time.Duration
	CommandDelay time.Duration

	// Table overrides the built-in command table.
	Table   command.Table
	Product string
	Version string

	Logger logger.Logger
}

// NewSystem builds a System. The surface is cleared when the demo starts,
// not here.
func NewSystem(opts Options) *System {
	log := logger.OrDefault(opts.Logger)

	surface := opts.Surface
	if surface == nil {
		surface = display.NewGrid(display.Cols, display.Rows)
	}
	port := opts.Port
	if port == nil {
		port = &platform.Recorder{Logger: log}
	}

	con := console.NewConsole(console.Options{
		Surface: surface,
		Logger:  log,
	})
	dispatcher := command.NewDispatcher(command.Options{
		Console:  con,
		Rebooter: &platform.Controller{Port: port, Logger: log},
		Table:    opts.Table,
		Product:  opts.Product,
		Version:  opts.Version,
		Logger:   log,
	})
	driver := demo.NewDriver(demo.Options{
		Dispatcher:   dispatcher,
		Waiter:       opts.Waiter,
		Script:       opts.Script,
		KeyDelay:     opts.KeyDelay,
		CommandDelay: opts.CommandDelay,
		Logger:       log,
	})

	return &System{
		surface:    surface,
		console:    con,
		dispatcher: dispatcher,
		driver:     driver,
		logger:     log,
	}
}

// Run plays the demo script. A contract violation inside the console
// panics; Run turns it into an error so the caller can restore the
// terminal.
func (s *System) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in Run", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in Run: %v", r)
		}
	}()
	return s.driver.Run(ctx)
}

// Type feeds one line through the keystroke path, prompt included.
func (s *System) Type(ctx context.Context, line string) error {
	return s.driver.Type(ctx, line)
}

// Halted reports whether a reboot was requested.
func (s *System) Halted() bool {
	return s.dispatcher.Halted()
}

// DumpString returns the screen as plain text.
func (s *System) DumpString() string {
	return display.Text(s.surface)
}

func (s *System) Surface() display.Surface {
	return s.surface
}

func (s *System) Console() *console.Console {
	return s.console
}

func (s *System) Dispatcher() *command.Dispatcher {
	return s.dispatcher
}
