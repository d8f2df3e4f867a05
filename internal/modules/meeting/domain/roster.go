package domain

import (
	"errors"

	categorydomain "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
)

var ErrZeroCount = errors.New("attendee count must be at least 1")

// RosterEntry groups the attendees sharing one salary category.
type RosterEntry struct {
	Category categorydomain.Category
	Count    int
}

// RosterRef is the persisted shape of an entry: categories are stored by
// name and resolved against the catalog on load.
type RosterRef struct {
	CategoryName string
	Count        int
}

// Roster is a multiset of attendees with at most one entry per category
// name. Entries keep first-add insertion order for deterministic display;
// totals do not depend on order.
type Roster struct {
	entries []RosterEntry
}

func NewRoster() *Roster {
	return &Roster{}
}

// Add increments the entry for the category by count, appending a new
// entry on first add. The category value captured at first add wins for
// later increments under the same name.
func (r *Roster) Add(category categorydomain.Category, count int) error {
	if count < 1 {
		return ErrZeroCount
	}
	for i := range r.entries {
		if r.entries[i].Category.Name() == category.Name() {
			r.entries[i].Count += count
			return nil
		}
	}
	r.entries = append(r.entries, RosterEntry{Category: category, Count: count})
	return nil
}

// Remove decrements the named entry by count, deleting it when the count
// reaches zero. Removal saturates: an unknown name, a non-positive count,
// or removing more than present is a no-op rather than an error.
func (r *Roster) Remove(name string, count int) {
	if count < 1 {
		return
	}
	for i := range r.entries {
		if r.entries[i].Category.Name() != name {
			continue
		}
		if r.entries[i].Count <= count {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
		} else {
			r.entries[i].Count -= count
		}
		return
	}
}

// Count reports the headcount for one category name.
func (r *Roster) Count(name string) (int, bool) {
	for _, entry := range r.entries {
		if entry.Category.Name() == name {
			return entry.Count, true
		}
	}
	return 0, false
}

// Headcount is the total attendee count across entries.
func (r *Roster) Headcount() int {
	total := 0
	for _, entry := range r.entries {
		total += entry.Count
	}
	return total
}

// CombinedHourlyRate sums count times hourly rate over all entries.
func (r *Roster) CombinedHourlyRate() float64 {
	total := 0.0
	for _, entry := range r.entries {
		total += float64(entry.Count) * entry.Category.HourlyRate()
	}
	return total
}

// Entries returns a copy of the roster in insertion order.
func (r *Roster) Entries() []RosterEntry {
	return append([]RosterEntry(nil), r.entries...)
}

// Refs returns the persistable shape of the roster in insertion order.
func (r *Roster) Refs() []RosterRef {
	out := make([]RosterRef, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, RosterRef{CategoryName: entry.Category.Name(), Count: entry.Count})
	}
	return out
}

// Clear removes every entry.
func (r *Roster) Clear() {
	r.entries = nil
}

func (r *Roster) Empty() bool {
	return len(r.entries) == 0
}
