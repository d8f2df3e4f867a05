package bootstrap

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	categoryinadapter "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/adapter/in"
	categoryoutadapter "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/adapter/out"
	categoryin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/in"
	categoryservice "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/service"
	categoryusecase "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/usecase"
	meetinginadapter "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/adapter/in"
	meetingoutadapter "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/adapter/out"
	meetingin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/in"
	meetingservice "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/service"
	meetingusecase "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/usecase"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/clock"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/config"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/id"
	uiapp "github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/app"
)

type App struct {
	CategoryCLI categoryinadapter.CLIHandler
	MeetingCLI  meetinginadapter.CLIHandler

	// RestoreNotice summarizes roster entries skipped during the startup
	// restore. Empty when the roster loaded cleanly.
	RestoreNotice string

	categoryUC categoryin.Usecase
	meetingUC  meetingin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	categoryUC := categoryusecase.NewInteractor(categoryservice.NewCatalogService(
		categoryoutadapter.NewTOMLCatalogStore(cfg.CategoriesPath)))

	ledger, err := meetingoutadapter.NewSQLiteLedgerStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open meeting ledger: %w", err)
	}
	meetingUC := meetingusecase.NewInteractor(meetingservice.NewMeetingService(
		clk,
		ids,
		meetingoutadapter.NewCatalogDirectory(categoryUC),
		meetingoutadapter.NewTOMLRosterStore(cfg.RosterPath),
		ledger,
	))

	// Hydrate the in-memory roster before anything mutates it; roster
	// mutations write through, so mutating an unhydrated roster would
	// drop the persisted entries.
	restore, err := meetingUC.Restore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("restore roster: %w", err)
	}
	var notice string
	if len(restore.Skipped) > 0 {
		notice = fmt.Sprintf("restored %d attendee entries, skipped unknown categories: %s",
			restore.Restored, strings.Join(restore.Skipped, ", "))
	}

	return &App{
		CategoryCLI:   categoryinadapter.NewCLIHandler(categoryUC),
		MeetingCLI:    meetinginadapter.NewCLIHandler(meetingUC),
		RestoreNotice: notice,
		categoryUC:    categoryUC,
		meetingUC:     meetingUC,
	}, nil
}

func RunTUI(cfg config.Config, app *App) error {
	model := uiapp.NewModel(cfg, app.categoryUC, app.meetingUC, app.RestoreNotice)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
