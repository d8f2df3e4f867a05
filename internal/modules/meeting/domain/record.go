package domain

import "time"

// MeetingRecord summarizes one finished meeting for the ledger. Duration
// is accumulated running time only; with pauses it is shorter than
// EndedAt minus StartedAt.
type MeetingRecord struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Duration   time.Duration
	Headcount  int
	HourlyRate float64
	TotalCost  float64
	Attendees  []RosterRef
}
