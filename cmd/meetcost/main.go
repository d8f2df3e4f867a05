package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/bootstrap"
	meetingdto "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "meetcost",
		Short:         "Real-time meeting cost tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newCategoryCmd(&dataDir))
	root.AddCommand(newRosterCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (config.Config, *bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return config.Config{}, nil, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, app, nil
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run meetcost terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func newCategoryCmd(dataDir *string) *cobra.Command {
	category := &cobra.Command{Use: "category", Short: "Manage salary categories"}

	var addName string
	var addSalary float64
	add := &cobra.Command{
		Use:   "add --name <name> --salary <annual>",
		Short: "Add a salary category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addName) == "" {
				return fmt.Errorf("--name is required")
			}
			if !cmd.Flags().Changed("salary") {
				return fmt.Errorf("--salary is required")
			}
			cfg, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.CategoryCLI.Add(context.Background(), addName, addSalary)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "category added: %s salary=%s%.0f/yr rate=%s%.2f/h\n",
				out.Name, cfg.Currency, out.AnnualSalary, cfg.Currency, out.HourlyRate)
			return nil
		},
	}
	add.Flags().StringVar(&addName, "name", "", "category name")
	add.Flags().Float64Var(&addSalary, "salary", 0, "annual salary (0 is valid)")

	category.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List salary categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			categories, err := app.CategoryCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no categories")
				return nil
			}
			for _, c := range categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%.0f/yr\t%s%.2f/h\n",
					c.Name, cfg.Currency, c.AnnualSalary, cfg.Currency, c.HourlyRate)
			}
			return nil
		},
	})

	var removeName string
	remove := &cobra.Command{
		Use:   "remove --name <name>",
		Short: "Remove a salary category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(removeName) == "" {
				return fmt.Errorf("--name is required")
			}
			_, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.CategoryCLI.Remove(context.Background(), removeName); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "category removed: %s\n", removeName)
			return nil
		},
	}
	remove.Flags().StringVar(&removeName, "name", "", "category name")

	category.AddCommand(add, remove)
	return category
}

func newRosterCmd(dataDir *string) *cobra.Command {
	roster := &cobra.Command{Use: "roster", Short: "Manage the attendee roster"}

	roster.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the attendee roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if app.RestoreNotice != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), app.RestoreNotice)
			}
			entries, err := app.MeetingCLI.Roster(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "roster is empty")
				return nil
			}
			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s%.2f/h\n",
					entry.CategoryName, entry.Count, cfg.Currency, entry.HourlyRate)
			}
			status, err := app.MeetingCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "headcount=%d rate=%s%.2f/h\n",
				status.Headcount, cfg.Currency, status.HourlyRate)
			return nil
		},
	})

	var addCategory string
	var addCount int
	add := &cobra.Command{
		Use:   "add --category <name> --count <n>",
		Short: "Add attendees from a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addCategory) == "" {
				return fmt.Errorf("--category is required")
			}
			_, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			status, err := app.MeetingCLI.AddAttendees(context.Background(), addCategory, addCount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %d × %s (headcount=%d)\n",
				addCount, addCategory, status.Headcount)
			return nil
		},
	}
	add.Flags().StringVar(&addCategory, "category", "", "category name")
	add.Flags().IntVar(&addCount, "count", 1, "attendees to add")

	var removeCategory string
	var removeCount int
	remove := &cobra.Command{
		Use:   "remove --category <name> --count <n>",
		Short: "Remove attendees from a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(removeCategory) == "" {
				return fmt.Errorf("--category is required")
			}
			_, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			status, err := app.MeetingCLI.RemoveAttendees(context.Background(), removeCategory, removeCount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d × %s (headcount=%d)\n",
				removeCount, removeCategory, status.Headcount)
			return nil
		},
	}
	remove.Flags().StringVar(&removeCategory, "category", "", "category name")
	remove.Flags().IntVar(&removeCount, "count", 1, "attendees to remove")

	roster.AddCommand(add, remove)

	roster.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the attendee roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if _, err := app.MeetingCLI.ClearRoster(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "roster cleared")
			return nil
		},
	})

	return roster
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Query recorded meetings"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded meetings, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			records, err := app.MeetingCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recorded meetings")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d people\t%s%.2f\t%s\n",
					r.ID,
					r.StartedAt.Local().Format("2006-01-02 15:04"),
					r.Duration.Truncate(time.Second),
					r.Headcount,
					cfg.Currency, r.TotalCost,
					joinAttendees(r.Attendees),
				)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 50, "records to show")

	history.AddCommand(list)
	return history
}

func joinAttendees(refs []meetingdto.AttendeeRefOutput) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("%s×%d", ref.CategoryName, ref.Count))
	}
	return strings.Join(parts, ",")
}
