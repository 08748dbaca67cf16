package demo

import (
	"context"
	"time"
)

// Waiter paces the demo. It returns early with the context error when ctx
// ends.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Sleeper waits on the wall clock.
type Sleeper struct{}

func (Sleeper) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopWaiter returns immediately.
type NopWaiter struct{}

func (NopWaiter) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// WaiterFunc adapts a function to Waiter.
type WaiterFunc func(ctx context.Context, d time.Duration) error

func (f WaiterFunc) Wait(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}
