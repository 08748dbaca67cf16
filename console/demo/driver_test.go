package demo

import (
	"context"
	"testing"
	"time"

	"github.com/hnimtadd/vgacon/console"
	"github.com/hnimtadd/vgacon/console/command"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/console/platform"
	"github.com/hnimtadd/vgacon/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWaiter struct {
	waits []time.Duration
	// cancel is called on the wait with this 1-based index, if set.
	cancelAt int
	cancel   context.CancelFunc
}

func (w *recordingWaiter) Wait(ctx context.Context, d time.Duration) error {
	w.waits = append(w.waits, d)
	if w.cancel != nil && len(w.waits) == w.cancelAt {
		w.cancel()
	}
	return ctx.Err()
}

func (w *recordingWaiter) count(d time.Duration) int {
	n := 0
	for _, got := range w.waits {
		if got == d {
			n++
		}
	}
	return n
}

func newTestDriver(script []string, waiter Waiter) (*Driver, *display.Grid, *platform.Recorder) {
	grid := display.NewGrid(display.Cols, display.Rows)
	con := console.NewConsole(console.Options{Surface: grid, Logger: logger.Discard})
	port := &platform.Recorder{Logger: logger.Discard}
	dispatcher := command.NewDispatcher(command.Options{
		Console:  con,
		Rebooter: &platform.Controller{Port: port, Logger: logger.Discard},
		Logger:   logger.Discard,
	})
	driver := NewDriver(Options{
		Dispatcher:   dispatcher,
		Waiter:       waiter,
		Script:       script,
		KeyDelay:     time.Millisecond,
		CommandDelay: time.Second,
		Logger:       logger.Discard,
	})
	return driver, grid, port
}

func TestDriver_DefaultScript(t *testing.T) {
	waiter := &recordingWaiter{}
	driver, grid, port := newTestDriver(nil, waiter)

	require.NoError(t, driver.Run(context.Background()))

	// The screen was cleared by the third command, so only the last two
	// remain, and reboot stops the demo before the final message.
	assert.Equal(t,
		"LudvigOS> version\n\nLudvigOS v1.0\nLudvigOS> reboot\n\nRebooting...",
		display.Text(grid))
	assert.Equal(t, []platform.PortWrite{{Port: 0x64, Value: 0xFE}}, port.Writes)
	assert.Equal(t, len("helpversionclearversionreboot"), waiter.count(time.Millisecond))
	assert.Equal(t, 4, waiter.count(time.Second))
}

func TestDriver_CompletesWithoutReboot(t *testing.T) {
	driver, grid, port := newTestDriver([]string{"version", "nope"}, NopWaiter{})

	require.NoError(t, driver.Run(context.Background()))

	assert.Equal(t, []string{
		"LudvigOS v1.0 - Automatic Command Demo",
		"Commands will be executed every 1s",
		"========================================",
		"LudvigOS> version",
		"",
		"LudvigOS v1.0",
		"LudvigOS> nope",
		"",
		"Unknown command: nope",
		"Type 'help' for available commands",
		"Demo completed. System halted.",
	}, rows(grid, 11))
	assert.Empty(t, port.Writes)
}

func TestDriver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waiter := &recordingWaiter{cancelAt: 2, cancel: cancel}
	driver, grid, _ := newTestDriver([]string{"version"}, waiter)

	err := driver.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "LudvigOS> ve", display.Row(grid, 3))
}

func TestSleeper(t *testing.T) {
	assert.NoError(t, Sleeper{}.Wait(context.Background(), time.Millisecond))
	assert.NoError(t, Sleeper{}.Wait(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleeper{}.Wait(ctx, time.Hour), context.Canceled)
}

func TestWaiterFunc(t *testing.T) {
	var got time.Duration
	w := WaiterFunc(func(_ context.Context, d time.Duration) error {
		got = d
		return nil
	})

	require.NoError(t, w.Wait(context.Background(), time.Minute))
	assert.Equal(t, time.Minute, got)
}

func rows(s display.Surface, n int) []string {
	out := make([]string, n)
	for y := 0; y < n; y++ {
		out[y] = display.Row(s, y)
	}
	return out
}
