package domain

// TotalCost converts the roster's combined hourly rate and the timer's
// elapsed time into accrued cost. Pure; an empty roster or zero elapsed
// time yields exactly zero.
func TotalCost(roster *Roster, timer *Timer) float64 {
	return roster.CombinedHourlyRate() * timer.Elapsed().Hours()
}
