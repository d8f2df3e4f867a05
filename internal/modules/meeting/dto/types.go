package dto

import "time"

type AddAttendeesInput struct {
	CategoryName string
	Count        int
}

type RemoveAttendeesInput struct {
	CategoryName string
	Count        int
}

type StatusOutput struct {
	State      string
	Elapsed    time.Duration
	Headcount  int
	HourlyRate float64
	TotalCost  float64
}

type RosterEntryOutput struct {
	CategoryName string
	AnnualSalary float64
	HourlyRate   float64
	Count        int
}

type AttendeeRefOutput struct {
	CategoryName string
	Count        int
}

type MeetingRecordOutput struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Duration   time.Duration
	Headcount  int
	HourlyRate float64
	TotalCost  float64
	Attendees  []AttendeeRefOutput
}

// ResetOutput reports whether the finished meeting was recorded in the
// ledger; zero-elapsed resets record nothing.
type ResetOutput struct {
	Status   StatusOutput
	Recorded bool
	Record   MeetingRecordOutput
}

// RestoreOutput reports the roster load at startup: how many entries
// were restored and which were skipped because their category is gone.
type RestoreOutput struct {
	Restored int
	Skipped  []string
}
