package usecase

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/domain"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	meetingin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/in"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/service"
)

type Interactor struct {
	svc *service.MeetingService
}

func NewInteractor(svc *service.MeetingService) meetingin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context) (dto.StatusOutput, error) {
	return toStatus(i.svc.Start(ctx)), nil
}

func (i *Interactor) Stop(ctx context.Context) (dto.StatusOutput, error) {
	return toStatus(i.svc.Stop(ctx)), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.ResetOutput, error) {
	status, record, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.ResetOutput{}, err
	}
	out := dto.ResetOutput{Status: toStatus(status)}
	if record != nil {
		out.Recorded = true
		out.Record = toRecord(*record)
	}
	return out, nil
}

func (i *Interactor) AddAttendees(ctx context.Context, input dto.AddAttendeesInput) (dto.StatusOutput, error) {
	status, err := i.svc.AddAttendees(ctx, input.CategoryName, input.Count)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatus(status), nil
}

func (i *Interactor) RemoveAttendees(ctx context.Context, input dto.RemoveAttendeesInput) (dto.StatusOutput, error) {
	status, err := i.svc.RemoveAttendees(ctx, input.CategoryName, input.Count)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatus(status), nil
}

func (i *Interactor) ClearRoster(ctx context.Context) (dto.StatusOutput, error) {
	status, err := i.svc.ClearRoster(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatus(status), nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	return toStatus(i.svc.Status(ctx)), nil
}

func (i *Interactor) Roster(ctx context.Context) ([]dto.RosterEntryOutput, error) {
	entries := i.svc.Roster(ctx)
	out := make([]dto.RosterEntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.RosterEntryOutput{
			CategoryName: entry.Category.Name(),
			AnnualSalary: entry.Category.AnnualSalary(),
			HourlyRate:   entry.Category.HourlyRate(),
			Count:        entry.Count,
		})
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.MeetingRecordOutput, error) {
	records, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingRecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toRecord(record))
	}
	return out, nil
}

func (i *Interactor) Restore(ctx context.Context) (dto.RestoreOutput, error) {
	restored, skipped, err := i.svc.Restore(ctx)
	if err != nil {
		return dto.RestoreOutput{}, err
	}
	return dto.RestoreOutput{Restored: restored, Skipped: skipped}, nil
}

func toStatus(status domain.Status) dto.StatusOutput {
	return dto.StatusOutput{
		State:      string(status.State),
		Elapsed:    status.Elapsed,
		Headcount:  status.Headcount,
		HourlyRate: status.HourlyRate,
		TotalCost:  status.TotalCost,
	}
}

func toRecord(record domain.MeetingRecord) dto.MeetingRecordOutput {
	attendees := make([]dto.AttendeeRefOutput, 0, len(record.Attendees))
	for _, ref := range record.Attendees {
		attendees = append(attendees, dto.AttendeeRefOutput{CategoryName: ref.CategoryName, Count: ref.Count})
	}
	return dto.MeetingRecordOutput{
		ID:         record.ID,
		StartedAt:  record.StartedAt,
		EndedAt:    record.EndedAt,
		Duration:   record.Duration,
		Headcount:  record.Headcount,
		HourlyRate: record.HourlyRate,
		TotalCost:  record.TotalCost,
		Attendees:  attendees,
	}
}
