package out

import (
	"context"

	categorydomain "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
)

// CategoryDirectory resolves salary categories by name when attendees
// are added or the roster is restored. Backed by the category module.
type CategoryDirectory interface {
	Lookup(ctx context.Context, name string) (categorydomain.Category, error)
}

// RosterStore persists the attendee roster between runs.
type RosterStore interface {
	Load(ctx context.Context) ([]domain.RosterRef, error)
	Save(ctx context.Context, refs []domain.RosterRef) error
}

// LedgerStore keeps the history of finished meetings.
type LedgerStore interface {
	Append(ctx context.Context, record domain.MeetingRecord) error
	List(ctx context.Context, limit int) ([]domain.MeetingRecord, error)
}
