package in

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	meetingin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/in"
)

type CLIHandler struct {
	usecase meetingin.Usecase
}

func NewCLIHandler(usecase meetingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Roster(ctx context.Context) ([]dto.RosterEntryOutput, error) {
	return h.usecase.Roster(ctx)
}

func (h CLIHandler) AddAttendees(ctx context.Context, categoryName string, count int) (dto.StatusOutput, error) {
	return h.usecase.AddAttendees(ctx, dto.AddAttendeesInput{CategoryName: categoryName, Count: count})
}

func (h CLIHandler) RemoveAttendees(ctx context.Context, categoryName string, count int) (dto.StatusOutput, error) {
	return h.usecase.RemoveAttendees(ctx, dto.RemoveAttendeesInput{CategoryName: categoryName, Count: count})
}

func (h CLIHandler) ClearRoster(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.ClearRoster(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.MeetingRecordOutput, error) {
	return h.usecase.History(ctx, limit)
}
