package domain

import (
	"time"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/clock"
)

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerStopped TimerState = "stopped"
)

// Timer accumulates running time across start/stop cycles. Elapsed time
// is derived from timestamp deltas at read time rather than counted per
// tick, so it stays accurate no matter how rarely it is polled.
type Timer struct {
	clock        clock.Clock
	state        TimerState
	accumulated  time.Duration
	runningSince time.Time
}

func NewTimer(clk clock.Clock) *Timer {
	return &Timer{clock: clk, state: TimerIdle}
}

// Start moves the timer to running from idle or stopped. Starting a
// running timer is a no-op and leaves runningSince untouched, so calling
// it twice never double-counts.
func (t *Timer) Start() {
	if t.state == TimerRunning {
		return
	}
	t.runningSince = t.clock.Now()
	t.state = TimerRunning
}

// Stop folds the live delta into the accumulated total and moves to
// stopped. A timer that is not running is left unchanged.
func (t *Timer) Stop() {
	if t.state != TimerRunning {
		return
	}
	t.accumulated += t.liveDelta()
	t.runningSince = time.Time{}
	t.state = TimerStopped
}

// Reset returns the timer to idle with zero accumulated time, from any
// state.
func (t *Timer) Reset() {
	t.state = TimerIdle
	t.accumulated = 0
	t.runningSince = time.Time{}
}

// Elapsed reports accumulated time plus the live delta while running.
// Read-only; safe to poll from a redraw loop.
func (t *Timer) Elapsed() time.Duration {
	if t.state == TimerRunning {
		return t.accumulated + t.liveDelta()
	}
	return t.accumulated
}

func (t *Timer) State() TimerState {
	return t.state
}

func (t *Timer) Running() bool {
	return t.state == TimerRunning
}

// liveDelta clamps at zero in case the clock lacks a monotonic reading
// and stepped backwards.
func (t *Timer) liveDelta() time.Duration {
	delta := t.clock.Now().Sub(t.runningSince)
	if delta < 0 {
		return 0
	}
	return delta
}
