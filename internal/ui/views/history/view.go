package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/theme"
)

// historyLimit bounds one page of ledger records; the ledger itself
// defaults lower when zero is passed through the CLI.
const historyLimit = 100

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the meeting
// use-case.
type Port interface {
	History(ctx context.Context, limit int) ([]dto.MeetingRecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// RecordsLoadedMsg is sent when the ledger query finishes.
type RecordsLoadedMsg struct {
	Records []dto.MeetingRecordOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the History tab.
type Model struct {
	port     Port
	currency string
	viewport viewport.Model
	spinner  spinner.Model
	records  []dto.MeetingRecordOutput
	loading  bool
	width    int
	height   int
}

func New(port Port, currency string) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, currency: currency, viewport: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderRecords())

	case RecordsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent(theme.Bad.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.records = msg.Records
		m.viewport.SetContent(m.renderRecords())
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading history…")
	}

	header := theme.Title.Render("History") + "  " +
		theme.Muted.Render(fmt.Sprintf("%d recorded meetings", len(m.records))) + "\n"
	headerH := lipgloss.Height(header)

	vpH := m.height - headerH
	if vpH < 1 {
		vpH = 1
	}
	m.viewport.Height = vpH

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

// Reload returns the command that refreshes the ledger page.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
}

func (m Model) renderRecords() string {
	if len(m.records) == 0 {
		return theme.Muted.Render("No recorded meetings yet.\n\nFinish one with x (reset) on the Meeting tab.")
	}

	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-17s %-10s %7s %10s %12s  %s",
		"started", "duration", "people", "rate/h", "cost", "attendees")) + "\n")
	for _, record := range m.records {
		attendees := make([]string, 0, len(record.Attendees))
		for _, ref := range record.Attendees {
			attendees = append(attendees, fmt.Sprintf("%s×%d", ref.CategoryName, ref.Count))
		}
		// styles go around pre-padded cells so ANSI codes don't skew widths
		cost := fmt.Sprintf("%12s", fmt.Sprintf("%s%.2f", m.currency, record.TotalCost))
		sb.WriteString(fmt.Sprintf("%-17s %-10s %7d %10s ",
			record.StartedAt.Local().Format("2006-01-02 15:04"),
			formatDuration(record.Duration),
			record.Headcount,
			fmt.Sprintf("%s%.2f", m.currency, record.HourlyRate)))
		sb.WriteString(theme.Hot.Render(cost))
		sb.WriteString("  " + theme.Muted.Render(strings.Join(attendees, ", ")) + "\n")
	}
	return sb.String()
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.port.History(context.Background(), historyLimit)
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}
