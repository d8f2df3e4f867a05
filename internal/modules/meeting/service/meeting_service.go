package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
	meetingout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/out"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/clock"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/id"
)

// MeetingService owns the single tracked meeting. The domain assumes one
// owner, so every entry point serializes on the service mutex; Bubble Tea
// command goroutines and CLI calls share the service safely.
type MeetingService struct {
	clock     clock.Clock
	idGen     id.Generator
	directory meetingout.CategoryDirectory
	roster    meetingout.RosterStore
	ledger    meetingout.LedgerStore

	mu        sync.Mutex
	meeting   *domain.Meeting
	startedAt time.Time
}

func NewMeetingService(clk clock.Clock, idGen id.Generator, directory meetingout.CategoryDirectory, roster meetingout.RosterStore, ledger meetingout.LedgerStore) *MeetingService {
	return &MeetingService{
		clock:     clk,
		idGen:     idGen,
		directory: directory,
		roster:    roster,
		ledger:    ledger,
		meeting:   domain.NewMeeting(clk),
	}
}

// Start begins or resumes the timer. The wall-clock instant of the first
// start since idle is kept for the ledger record.
func (s *MeetingService) Start(_ context.Context) domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting.State() == domain.TimerIdle {
		s.startedAt = s.clock.Now()
	}
	s.meeting.Start()
	return s.meeting.Status()
}

func (s *MeetingService) Stop(_ context.Context) domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meeting.Stop()
	return s.meeting.Status()
}

// Reset records the finished meeting in the ledger when any time accrued,
// then returns the timer to idle. The roster survives a reset. A failed
// ledger write aborts the reset so the meeting is not lost.
func (s *MeetingService) Reset(ctx context.Context) (domain.Status, *domain.MeetingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.meeting.Elapsed()
	var record *domain.MeetingRecord
	if elapsed > 0 {
		rate := s.meeting.CombinedHourlyRate()
		rec := domain.MeetingRecord{
			ID:         s.idGen.New(),
			StartedAt:  s.startedAt,
			EndedAt:    s.clock.Now(),
			Duration:   elapsed,
			Headcount:  s.meeting.Headcount(),
			HourlyRate: rate,
			TotalCost:  rate * elapsed.Hours(),
			Attendees:  s.meeting.Refs(),
		}
		if err := s.ledger.Append(ctx, rec); err != nil {
			return domain.Status{}, nil, fmt.Errorf("record meeting: %w", err)
		}
		record = &rec
	}
	s.meeting.Reset()
	s.startedAt = time.Time{}
	return s.meeting.Status(), record, nil
}

// AddAttendees resolves the category against the catalog, adds count
// attendees, and writes the roster through to the store.
func (s *MeetingService) AddAttendees(ctx context.Context, categoryName string, count int) (domain.Status, error) {
	category, err := s.directory.Lookup(ctx, categoryName)
	if err != nil {
		return domain.Status{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.meeting.AddAttendees(category, count); err != nil {
		return domain.Status{}, err
	}
	if err := s.saveRosterLocked(ctx); err != nil {
		return domain.Status{}, err
	}
	return s.meeting.Status(), nil
}

func (s *MeetingService) RemoveAttendees(ctx context.Context, categoryName string, count int) (domain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meeting.RemoveAttendees(categoryName, count)
	if err := s.saveRosterLocked(ctx); err != nil {
		return domain.Status{}, err
	}
	return s.meeting.Status(), nil
}

func (s *MeetingService) ClearRoster(ctx context.Context) (domain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meeting.ClearRoster()
	if err := s.saveRosterLocked(ctx); err != nil {
		return domain.Status{}, err
	}
	return s.meeting.Status(), nil
}

func (s *MeetingService) Status(_ context.Context) domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meeting.Status()
}

func (s *MeetingService) Roster(_ context.Context) []domain.RosterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meeting.Entries()
}

func (s *MeetingService) History(ctx context.Context, limit int) ([]domain.MeetingRecord, error) {
	return s.ledger.List(ctx, limit)
}

// Restore loads the persisted roster, resolving category names against
// the catalog. Entries whose category no longer exists, or whose count is
// invalid, are skipped and reported rather than failing the load. The
// store is left untouched until the next roster mutation.
func (s *MeetingService) Restore(ctx context.Context) (int, []string, error) {
	refs, err := s.roster.Load(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("load roster: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := 0
	var skipped []string
	for _, ref := range refs {
		category, err := s.directory.Lookup(ctx, ref.CategoryName)
		if err != nil {
			skipped = append(skipped, ref.CategoryName)
			continue
		}
		if err := s.meeting.AddAttendees(category, ref.Count); err != nil {
			skipped = append(skipped, ref.CategoryName)
			continue
		}
		restored++
	}
	return restored, skipped, nil
}

func (s *MeetingService) saveRosterLocked(ctx context.Context) error {
	if err := s.roster.Save(ctx, s.meeting.Refs()); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}
