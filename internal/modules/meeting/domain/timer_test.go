package domain_test

import (
	"testing"
	"time"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestTimerStartsIdleWithZeroElapsed(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(&fakeClock{values: []time.Time{epoch}})
	if timer.State() != domain.TimerIdle {
		t.Fatalf("expected idle state, got %s", timer.State())
	}
	if timer.Running() {
		t.Fatalf("new timer must not be running")
	}
	if timer.Elapsed() != 0 {
		t.Fatalf("expected zero elapsed, got %s", timer.Elapsed())
	}
}

func TestTimerStartStopFoldsElapsed(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		epoch,
		epoch.Add(10 * time.Minute),
	}}
	timer := domain.NewTimer(clk)
	timer.Start()
	if timer.State() != domain.TimerRunning {
		t.Fatalf("expected running after start, got %s", timer.State())
	}
	timer.Stop()
	if timer.State() != domain.TimerStopped {
		t.Fatalf("expected stopped after stop, got %s", timer.State())
	}
	if got := timer.Elapsed(); got != 10*time.Minute {
		t.Fatalf("expected 10m elapsed, got %s", got)
	}
}

func TestTimerStartStopWithSameInstantIsZero(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{epoch, epoch}}
	timer := domain.NewTimer(clk)
	timer.Start()
	timer.Stop()
	if got := timer.Elapsed(); got != 0 {
		t.Fatalf("expected zero elapsed, got %s", got)
	}
}

func TestTimerStartWhileRunningDoesNotRestart(t *testing.T) {
	t.Parallel()
	// If the second Start reset runningSince it would consume the second
	// instant and the stop delta would collapse to zero.
	clk := &fakeClock{values: []time.Time{
		epoch,
		epoch.Add(5 * time.Minute),
	}}
	timer := domain.NewTimer(clk)
	timer.Start()
	timer.Start()
	timer.Stop()
	if got := timer.Elapsed(); got != 5*time.Minute {
		t.Fatalf("expected 5m elapsed, got %s", got)
	}
}

func TestTimerStopWhenNotRunningIsNoOp(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		epoch,
		epoch.Add(time.Minute),
	}}
	timer := domain.NewTimer(clk)
	timer.Stop()
	if timer.State() != domain.TimerIdle {
		t.Fatalf("stop on idle must not change state, got %s", timer.State())
	}
	timer.Start()
	timer.Stop()
	timer.Stop()
	if got := timer.Elapsed(); got != time.Minute {
		t.Fatalf("second stop must not change elapsed, got %s", got)
	}
	if timer.State() != domain.TimerStopped {
		t.Fatalf("expected stopped, got %s", timer.State())
	}
}

func TestTimerAccumulatesAcrossCycles(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		epoch,
		epoch.Add(10 * time.Minute),
		epoch.Add(20 * time.Minute),
		epoch.Add(25 * time.Minute),
	}}
	timer := domain.NewTimer(clk)
	timer.Start()
	timer.Stop()
	timer.Start()
	if got := timer.Elapsed(); got != 15*time.Minute {
		t.Fatalf("expected 10m accumulated plus 5m live, got %s", got)
	}
	if timer.State() != domain.TimerRunning {
		t.Fatalf("elapsed must not mutate state, got %s", timer.State())
	}
}

func TestTimerResetFromEveryState(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		prepare func(timer *domain.Timer)
	}{
		{name: "idle", prepare: func(*domain.Timer) {}},
		{name: "running", prepare: func(timer *domain.Timer) { timer.Start() }},
		{name: "stopped", prepare: func(timer *domain.Timer) { timer.Start(); timer.Stop() }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			clk := &fakeClock{values: []time.Time{epoch, epoch.Add(time.Hour)}}
			timer := domain.NewTimer(clk)
			tc.prepare(timer)
			timer.Reset()
			if timer.State() != domain.TimerIdle {
				t.Fatalf("expected idle after reset, got %s", timer.State())
			}
			if got := timer.Elapsed(); got != 0 {
				t.Fatalf("expected zero elapsed after reset, got %s", got)
			}
		})
	}
}

func TestTimerRestartsAfterReset(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		epoch,
		epoch.Add(time.Hour),
		epoch.Add(2 * time.Hour),
		epoch.Add(2*time.Hour + 30*time.Minute),
	}}
	timer := domain.NewTimer(clk)
	timer.Start()
	timer.Stop()
	timer.Reset()
	timer.Start()
	timer.Stop()
	if got := timer.Elapsed(); got != 30*time.Minute {
		t.Fatalf("expected only post-reset time, got %s", got)
	}
}

func TestTimerClampsBackwardsClock(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		epoch.Add(time.Hour),
		epoch,
	}}
	timer := domain.NewTimer(clk)
	timer.Start()
	if got := timer.Elapsed(); got != 0 {
		t.Fatalf("expected clamped zero elapsed, got %s", got)
	}
}
