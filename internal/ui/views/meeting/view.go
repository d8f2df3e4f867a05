package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal read surface this view needs from the meeting
// use-case. Mutations are issued by the app model.
type Port interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	Roster(ctx context.Context) ([]dto.RosterEntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// StatusMsg carries one poll result. The app model forwards it here
// regardless of the active tab so the poll loop keeps running.
type StatusMsg struct {
	Status dto.StatusOutput
	Err    error
}

// RosterLoadedMsg is sent when the attendee roster finishes loading.
type RosterLoadedMsg struct {
	Entries []dto.RosterEntryOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type rosterItem struct {
	entry    dto.RosterEntryOutput
	currency string
}

func (i rosterItem) Title() string { return i.entry.CategoryName }
func (i rosterItem) Description() string {
	return fmt.Sprintf("%d × %s%.2f/h", i.entry.Count, i.currency, i.entry.HourlyRate)
}
func (i rosterItem) FilterValue() string { return i.entry.CategoryName }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	tick     time.Duration
	currency string
	roster   list.Model
	status   dto.StatusOutput
	width    int
	height   int
}

func New(port Port, tick time.Duration, currency string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Attendees"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, tick: tick, currency: currency, roster: l}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.loadRosterCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case StatusMsg:
		if msg.Err == nil {
			m.status = msg.Status
		}
		// re-arm the poll regardless of errors so the loop never dies
		return m, m.pollCmd()

	case RosterLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, entry := range msg.Entries {
			items[i] = rosterItem{entry: entry, currency: m.currency}
		}
		return m, m.roster.SetItems(items)
	}

	var cmd tea.Cmd
	m.roster, cmd = m.roster.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	panelW := m.width * 5 / 10
	listW := m.width - panelW

	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(panelW - 2).
		Height(m.height - 2).
		Padding(1, 2).
		Render(m.renderStatus())

	rosterPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.roster.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, panel, rosterPane)
}

// SetStatus pushes a fresh snapshot after a mutation, without waiting
// for the next poll.
func (m *Model) SetStatus(status dto.StatusOutput) {
	m.status = status
}

// ReloadRoster returns the command that refreshes the attendee list.
func (m Model) ReloadRoster() tea.Cmd {
	return m.loadRosterCmd()
}

// SelectedCategory returns the highlighted roster entry's category name.
func (m Model) SelectedCategory() (string, bool) {
	if item, ok := m.roster.SelectedItem().(rosterItem); ok {
		return item.entry.CategoryName, true
	}
	return "", false
}

// Filtering reports whether the roster list's search filter is active.
func (m Model) Filtering() bool {
	return m.roster.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	panelW := m.width * 5 / 10
	m.roster.SetSize(m.width-panelW, m.height)
}

func (m Model) renderStatus() string {
	s := m.status

	var stateLine string
	switch s.State {
	case "running":
		stateLine = theme.Good.Render("● running")
	case "stopped":
		stateLine = theme.Warn.Render("◐ stopped")
	default:
		stateLine = theme.Muted.Render("○ idle")
	}

	cost := theme.Hot.Render(fmt.Sprintf("%s%.2f", m.currency, s.TotalCost))
	elapsed := theme.Title.Render(formatDuration(s.Elapsed))

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s  %s\n%s  %s\n\n%s %s%.2f/h\n%s %d\n\n%s",
		theme.Title.Render("Meeting"),
		stateLine,
		theme.Muted.Render("elapsed"), elapsed,
		theme.Muted.Render("cost   "), cost,
		theme.Muted.Render("rate     "), m.currency, s.HourlyRate,
		theme.Muted.Render("attendees"), s.Headcount,
		theme.Muted.Render("s:start  t:stop  x:reset\ne:add  r:remove  c:clear"),
	)
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (m Model) pollCmd() tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	})
}

func (m Model) loadRosterCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.port.Roster(context.Background())
		return RosterLoadedMsg{Entries: entries, Err: err}
	}
}
