package domain

import (
	"time"

	categorydomain "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/clock"
)

// Meeting composes one roster and one timer into the single object the
// UI and CLI drive. It assumes a single owner; callers that share it
// across goroutines serialize access themselves.
type Meeting struct {
	roster *Roster
	timer  *Timer
}

func NewMeeting(clk clock.Clock) *Meeting {
	return &Meeting{roster: NewRoster(), timer: NewTimer(clk)}
}

func (m *Meeting) AddAttendees(category categorydomain.Category, count int) error {
	return m.roster.Add(category, count)
}

func (m *Meeting) RemoveAttendees(name string, count int) {
	m.roster.Remove(name, count)
}

func (m *Meeting) AttendeeCount(name string) (int, bool) {
	return m.roster.Count(name)
}

func (m *Meeting) Entries() []RosterEntry {
	return m.roster.Entries()
}

func (m *Meeting) Refs() []RosterRef {
	return m.roster.Refs()
}

// ClearRoster drops every attendee without touching the timer.
func (m *Meeting) ClearRoster() {
	m.roster.Clear()
}

func (m *Meeting) RosterEmpty() bool {
	return m.roster.Empty()
}

func (m *Meeting) Start() {
	m.timer.Start()
}

func (m *Meeting) Stop() {
	m.timer.Stop()
}

// Reset returns the timer to idle and zero. The roster survives a reset:
// attendee lists are reusable across meetings and only ClearRoster drops
// them.
func (m *Meeting) Reset() {
	m.timer.Reset()
}

func (m *Meeting) Elapsed() time.Duration {
	return m.timer.Elapsed()
}

func (m *Meeting) State() TimerState {
	return m.timer.State()
}

func (m *Meeting) Running() bool {
	return m.timer.Running()
}

func (m *Meeting) Headcount() int {
	return m.roster.Headcount()
}

func (m *Meeting) CombinedHourlyRate() float64 {
	return m.roster.CombinedHourlyRate()
}

func (m *Meeting) TotalCost() float64 {
	return TotalCost(m.roster, m.timer)
}

// Status is one consistent snapshot for display loops: elapsed is read
// once and the cost is computed from that same reading.
type Status struct {
	State      TimerState
	Elapsed    time.Duration
	Headcount  int
	HourlyRate float64
	TotalCost  float64
}

func (m *Meeting) Status() Status {
	elapsed := m.timer.Elapsed()
	rate := m.roster.CombinedHourlyRate()
	return Status{
		State:      m.timer.State(),
		Elapsed:    elapsed,
		Headcount:  m.roster.Headcount(),
		HourlyRate: rate,
		TotalCost:  rate * elapsed.Hours(),
	}
}
