package in

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StatusOutput, error)
	Stop(ctx context.Context) (dto.StatusOutput, error)
	Reset(ctx context.Context) (dto.ResetOutput, error)
	AddAttendees(ctx context.Context, input dto.AddAttendeesInput) (dto.StatusOutput, error)
	RemoveAttendees(ctx context.Context, input dto.RemoveAttendeesInput) (dto.StatusOutput, error)
	ClearRoster(ctx context.Context) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Roster(ctx context.Context) ([]dto.RosterEntryOutput, error)
	History(ctx context.Context, limit int) ([]dto.MeetingRecordOutput, error)
	Restore(ctx context.Context) (dto.RestoreOutput, error)
}
