package demo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hnimtadd/vgacon/console/ansi"
	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/command"
	"github.com/hnimtadd/vgacon/logger"
)

const (
	DefaultKeyDelay     = 100 * time.Millisecond
	DefaultCommandDelay = 3 * time.Second
)

// DefaultScript is the command sequence the demo types.
var DefaultScript = []string{"help", "version", "clear", "version", "reboot"}

type (
	Options struct {
		Dispatcher *command.Dispatcher

		// Waiter paces keystrokes and commands. NopWaiter when nil.
		Waiter Waiter

		// Script is typed in order; DefaultScript when nil.
		Script []string

		// KeyDelay is waited after every typed character, CommandDelay
		// after every submitted line.
		KeyDelay     time.Duration
		CommandDelay time.Duration

		Logger logger.Logger
	}

	// Driver types a fixed script through the dispatcher's keystroke
	// path, as if a user were at the keyboard.
	Driver struct {
		dispatcher   *command.Dispatcher
		waiter       Waiter
		script       []string
		keyDelay     time.Duration
		commandDelay time.Duration

		logger logger.Logger
	}
)

func NewDriver(opts Options) *Driver {
	waiter := opts.Waiter
	if waiter == nil {
		waiter = NopWaiter{}
	}
	script := opts.Script
	if script == nil {
		script = DefaultScript
	}
	return &Driver{
		dispatcher:   opts.Dispatcher,
		waiter:       waiter,
		script:       slices.Clone(script),
		keyDelay:     opts.KeyDelay,
		commandDelay: opts.CommandDelay,
		logger:       logger.OrDefault(opts.Logger),
	}
}

// Run clears the screen, prints the banner and types every scripted
// command. It stops after a command halts the dispatcher, and returns the
// context error if ctx ends while waiting.
func (d *Driver) Run(ctx context.Context) error {
	con := d.dispatcher.Console()
	con.ClearScreen()
	con.PrintText(d.dispatcher.VersionString()+" - Automatic Command Demo\n", color.Prompt)
	con.Print(fmt.Sprintf("Commands will be executed every %s\n", d.commandDelay), color.Info)
	con.Print("========================================\n", color.Info)

	for i, line := range d.script {
		d.logger.Info("typing command", "index", i, "command", line)
		if err := d.Type(ctx, line); err != nil {
			return err
		}
		if d.dispatcher.Halted() {
			d.logger.Info("dispatcher halted, stopping demo", "command", line)
			return nil
		}
		if err := d.waiter.Wait(ctx, d.commandDelay); err != nil {
			return fmt.Errorf("demo: waiting after %q: %w", line, err)
		}
	}

	con.Print("Demo completed. System halted.\n", color.Alert)
	return nil
}

// Type prints the prompt, then feeds line one keystroke at a time followed
// by Enter.
func (d *Driver) Type(ctx context.Context, line string) error {
	d.dispatcher.Prompt()
	for i := 0; i < len(line); i++ {
		d.dispatcher.Key(line[i])
		if err := d.waiter.Wait(ctx, d.keyDelay); err != nil {
			return fmt.Errorf("demo: typing %q: %w", line, err)
		}
	}
	d.dispatcher.Key(ansi.C0.LF)
	return nil
}
