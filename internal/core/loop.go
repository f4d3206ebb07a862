package core

import (
	"context"
	"sync"
	"time"
)

// FrameFunc is invoked once per frame with a monotonically increasing
// timestamp. Returning false ends the loop without scheduling another frame.
type FrameFunc func(now time.Time) bool

// Driver runs a frame callback at a fixed target rate.
//
// The next frame is scheduled only after the previous callback has returned,
// so two frames never overlap. Slow frames delay the next tick; frames are
// never skipped or batched to catch up.
type Driver struct {
	interval time.Duration
	now      func() time.Time

	startMu sync.Mutex // serializes Start so each loop is stopped before the next
	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewDriver creates a driver ticking tickRate times per second.
func NewDriver(tickRate int) *Driver {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Driver{
		interval: time.Second / time.Duration(tickRate),
		now:      time.Now,
	}
}

// Start begins invoking fn once per frame on a new goroutine.
// Starting a driver that is already running stops the previous loop first.
// Like Stop, it must not be called from inside the frame callback.
func (d *Driver) Start(ctx context.Context, fn FrameFunc) {
	d.startMu.Lock()
	defer d.startMu.Unlock()

	d.Stop()

	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.running = true

	go d.run(ctx, fn, done)
}

// run is the frame loop body.
func (d *Driver) run(ctx context.Context, fn FrameFunc, done chan struct{}) {
	defer close(done)
	defer d.markStopped(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		now := d.now()
		if !now.After(last) {
			// Keep timestamps strictly increasing even on coarse clocks.
			now = last.Add(time.Nanosecond)
		}
		last = now

		if !fn(now) {
			return
		}

		// Schedule relative to the end of this frame's work.
		timer.Reset(d.interval)
	}
}

// markStopped clears the running flag if this loop is still the current one.
func (d *Driver) markStopped(done chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == done {
		d.running = false
	}
}

// Stop cancels the loop and waits for the in-flight frame to finish.
// Stopping an already stopped driver is a no-op. Stop must not be called
// from inside the frame callback; return false from it instead.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a frame loop is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}
