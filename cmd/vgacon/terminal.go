package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/vgacon"
	"github.com/hnimtadd/vgacon/console/demo"
	"github.com/hnimtadd/vgacon/logger"
	"github.com/hnimtadd/vgacon/render"
)

// runTerminal plays the script on the terminal, redrawing before every
// pause. When the script ends the last frame stays up until the user
// presses Esc, q or Ctrl-C.
func runTerminal(ctx context.Context, opts vgacon.Options, log logger.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollQuit(screen, cancel)

	renderer := render.NewScreen(render.Options{Screen: screen, Logger: log})

	var sys *vgacon.System
	opts.Waiter = demo.WaiterFunc(func(ctx context.Context, d time.Duration) error {
		renderer.Draw(sys.Surface(), sys.Console().Cursor())
		return demo.Sleeper{}.Wait(ctx, d)
	})
	sys = vgacon.NewSystem(opts)

	if err := sys.Run(ctx); err != nil {
		return err
	}
	renderer.Draw(sys.Surface(), sys.Console().Cursor())
	log.Info("demo finished, waiting for quit", "halted", sys.Halted())

	<-ctx.Done()
	return nil
}

// pollQuit cancels the run on Esc, q or Ctrl-C and repaints on resize. It
// returns once the screen is finalized.
func pollQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
