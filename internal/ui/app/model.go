package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	categorydto "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/config"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/components"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/theme"
	categoriesview "github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/views/categories"
	historyview "github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/views/history"
	meetingview "github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/views/meeting"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// The same interactor satisfies the narrower per-view ports structurally.

type meetingPort interface {
	Start(ctx context.Context) (dto.StatusOutput, error)
	Stop(ctx context.Context) (dto.StatusOutput, error)
	Reset(ctx context.Context) (dto.ResetOutput, error)
	AddAttendees(ctx context.Context, input dto.AddAttendeesInput) (dto.StatusOutput, error)
	RemoveAttendees(ctx context.Context, input dto.RemoveAttendeesInput) (dto.StatusOutput, error)
	ClearRoster(ctx context.Context) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Roster(ctx context.Context) ([]dto.RosterEntryOutput, error)
	History(ctx context.Context, limit int) ([]dto.MeetingRecordOutput, error)
}

type categoryPort interface {
	Add(ctx context.Context, input categorydto.AddInput) (categorydto.CategoryOutput, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]categorydto.CategoryOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabMeeting tabID = iota
	tabCategories
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Meeting", "Categories", "History"}

// ─── prompt ids ──────────────────────────────────────────────────────────────

const (
	promptAddCategory     = "category:add"
	promptAddAttendees    = "roster:add"
	promptRemoveAttendees = "roster:remove"
)

// ─── async messages ──────────────────────────────────────────────────────────

type actionDoneMsg struct {
	status dto.StatusOutput
	note   string
	roster bool // the attendee list changed and needs a reload
	err    error
}

type resetDoneMsg struct {
	out dto.ResetOutput
	err error
}

type categorySavedMsg struct {
	note string
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Start     key.Binding
	Stop      key.Binding
	Reset     key.Binding
	AddAtt    key.Binding
	RemoveAtt key.Binding
	Clear     key.Binding
	AddCat    key.Binding
	DeleteCat key.Binding
	Tab       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "stop")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		AddAtt:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "add attendees")),
		RemoveAtt: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove attendees")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear roster")),
		AddCat:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add category")),
		DeleteCat: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete category")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Reset, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Reset},
		{k.AddAtt, k.RemoveAtt, k.Clear},
		{k.AddCat, k.DeleteCat},
		{k.Tab, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the prompt
// overlay, the help overlay, and the status bar. All business logic is
// delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	currency string

	meeting  meetingPort
	category categoryPort

	// sub-views (one per tab)
	meetingView    meetingview.Model
	categoriesView categoriesview.Model
	historyView    historyview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	prompt    components.Prompt
	lastState string
	status    string
	width     int
	height    int
}

// NewModel wires the root model. notice seeds the status bar, letting
// bootstrap surface roster-restore warnings on first paint.
func NewModel(cfg config.Config, category categoryPort, meeting meetingPort, notice string) Model {
	status := "ready"
	if notice != "" {
		status = notice
	}
	return Model{
		currency:       cfg.Currency,
		meeting:        meeting,
		category:       category,
		meetingView:    meetingview.New(meeting, cfg.TickInterval, cfg.Currency),
		categoriesView: categoriesview.New(category, cfg.Currency),
		historyView:    historyview.New(meeting, cfg.Currency),
		activeTab:      tabMeeting,
		keys:           defaultKeys(),
		help:           help.New(),
		prompt:         components.NewPrompt(),
		lastState:      "idle",
		status:         status,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.meetingView.Init(),
		m.categoriesView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The poll loop must keep flowing no matter which tab or overlay is
	// up, or the timer readout freezes.
	if status, ok := msg.(meetingview.StatusMsg); ok {
		if status.Err != nil {
			m.status = "status: " + status.Err.Error()
		} else {
			m.lastState = status.Status.State
		}
		var cmd tea.Cmd
		m.meetingView, cmd = m.meetingView.Update(status)
		return m, cmd
	}

	// The prompt intercepts all input while open.
	if m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(min(m.width-4, 64))
		m.help.Width = m.width
		m.propagateSize()

	case components.SubmitMsg:
		return m.executePrompt(msg)

	case components.CancelMsg:
		m.status = "ready"

	case actionDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			break
		}
		m.meetingView.SetStatus(msg.status)
		m.lastState = msg.status.State
		m.status = msg.note
		if msg.roster {
			cmds = append(cmds, m.meetingView.ReloadRoster())
		}

	case resetDoneMsg:
		if msg.err != nil {
			m.status = "reset failed: " + msg.err.Error()
			break
		}
		m.meetingView.SetStatus(msg.out.Status)
		m.lastState = msg.out.Status.State
		if msg.out.Recorded {
			m.status = fmt.Sprintf("recorded %s · %s%.2f",
				msg.out.Record.Duration.Truncate(time.Second), m.currency, msg.out.Record.TotalCost)
			cmds = append(cmds, m.historyView.Reload())
		} else {
			m.status = "reset (nothing recorded)"
		}

	case categorySavedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			break
		}
		m.status = msg.note
		cmds = append(cmds, m.categoriesView.Reload())

	// Load results are routed to their owning view regardless of the
	// active tab, so reloads triggered from other tabs still land.
	case meetingview.RosterLoadedMsg:
		var cmd tea.Cmd
		m.meetingView, cmd = m.meetingView.Update(msg)
		return m, cmd

	case categoriesview.LoadedMsg:
		var cmd tea.Cmd
		m.categoriesView, cmd = m.categoriesView.Update(msg)
		return m, cmd

	case historyview.RecordsLoadedMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			if m.activeTab == tabHistory {
				cmds = append(cmds, m.historyView.Reload())
			}
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			if m.activeTab == tabHistory {
				cmds = append(cmds, m.historyView.Reload())
			}
		case "?":
			m.showHelp = !m.showHelp
		case "s":
			if m.activeTab == tabMeeting {
				cmds = append(cmds, m.startCmd())
			}
		case "t":
			if m.activeTab == tabMeeting {
				cmds = append(cmds, m.stopCmd())
			}
		case "x":
			if m.activeTab == tabMeeting {
				cmds = append(cmds, m.resetCmd())
			}
		case "c":
			if m.activeTab == tabMeeting {
				cmds = append(cmds, m.clearRosterCmd())
			}
		case "e":
			switch m.activeTab {
			case tabMeeting:
				cmds = append(cmds, m.prompt.Open(
					promptAddAttendees, "Add attendees", "category:count", m.rosterSeed()))
			case tabCategories:
				if name, ok := m.categoriesView.SelectedName(); ok {
					cmds = append(cmds, m.prompt.Open(
						promptAddAttendees, "Add attendees", "category:count", name+":"))
				}
			}
		case "r":
			if m.activeTab == tabMeeting {
				cmds = append(cmds, m.prompt.Open(
					promptRemoveAttendees, "Remove attendees", "category:count", m.rosterSeed()))
			}
		case "a":
			if m.activeTab == tabCategories {
				cmds = append(cmds, m.prompt.Open(
					promptAddCategory, "Add category", "name:annual salary", ""))
			}
		case "d":
			if m.activeTab == tabCategories {
				if name, ok := m.categoriesView.SelectedName(); ok {
					cmds = append(cmds, m.removeCategoryCmd(name))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabMeeting:
		m.meetingView, tabCmd = m.meetingView.Update(msg)
	case tabCategories:
		m.categoriesView, tabCmd = m.categoriesView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.prompt.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabMeeting:
		return m.meetingView.View()
	case tabCategories:
		return m.categoriesView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "meetcost  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	var dot string
	switch m.lastState {
	case "running":
		dot = theme.Good.Render("●")
	case "stopped":
		dot = theme.Warn.Render("◐")
	default:
		dot = theme.Muted.Render("○")
	}
	left := dot + " " + m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── prompt execution ────────────────────────────────────────────────────────

func (m Model) executePrompt(msg components.SubmitMsg) (tea.Model, tea.Cmd) {
	if msg.Input == "" {
		m.status = "ready"
		return m, nil
	}
	switch msg.ID {
	case promptAddCategory:
		name, salary, err := parseNameSalary(msg.Input)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.addCategoryCmd(name, salary)

	case promptAddAttendees:
		name, count, err := parseNameCount(msg.Input)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.addAttendeesCmd(name, count)

	case promptRemoveAttendees:
		name, count, err := parseNameCount(msg.Input)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.removeAttendeesCmd(name, count)
	}
	return m, nil
}

func parseNameSalary(input string) (string, float64, error) {
	name, raw, ok := strings.Cut(input, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("expected name:annual salary")
	}
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid salary %q", strings.TrimSpace(raw))
	}
	return name, salary, nil
}

func parseNameCount(input string) (string, int, error) {
	name, raw, ok := strings.Cut(input, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("expected category:count")
	}
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, fmt.Errorf("invalid count %q", strings.TrimSpace(raw))
	}
	return name, count, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// rosterSeed prefills attendee prompts with the highlighted roster entry.
func (m Model) rosterSeed() string {
	if name, ok := m.meetingView.SelectedCategory(); ok {
		return name + ":"
	}
	return ""
}

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabMeeting:
		return m.meetingView.Filtering()
	case tabCategories:
		return m.categoriesView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.meetingView, _ = m.meetingView.Update(sz)
	m.categoriesView, _ = m.categoriesView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.meeting.Start(context.Background())
		return actionDoneMsg{status: status, note: "meeting started", err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.meeting.Stop(context.Background())
		return actionDoneMsg{status: status, note: "meeting stopped", err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.meeting.Reset(context.Background())
		return resetDoneMsg{out: out, err: err}
	}
}

func (m Model) clearRosterCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.meeting.ClearRoster(context.Background())
		return actionDoneMsg{status: status, note: "roster cleared", roster: true, err: err}
	}
}

func (m Model) addAttendeesCmd(name string, count int) tea.Cmd {
	return func() tea.Msg {
		status, err := m.meeting.AddAttendees(context.Background(),
			dto.AddAttendeesInput{CategoryName: name, Count: count})
		return actionDoneMsg{
			status: status,
			note:   fmt.Sprintf("added %d × %s", count, name),
			roster: true,
			err:    err,
		}
	}
}

func (m Model) removeAttendeesCmd(name string, count int) tea.Cmd {
	return func() tea.Msg {
		status, err := m.meeting.RemoveAttendees(context.Background(),
			dto.RemoveAttendeesInput{CategoryName: name, Count: count})
		return actionDoneMsg{
			status: status,
			note:   fmt.Sprintf("removed %d × %s", count, name),
			roster: true,
			err:    err,
		}
	}
}

func (m Model) addCategoryCmd(name string, salary float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.category.Add(context.Background(),
			categorydto.AddInput{Name: name, AnnualSalary: salary})
		if err != nil {
			return categorySavedMsg{err: err}
		}
		return categorySavedMsg{note: fmt.Sprintf("added %s (%s%.2f/h)", out.Name, m.currency, out.HourlyRate)}
	}
}

func (m Model) removeCategoryCmd(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.category.Remove(context.Background(), name); err != nil {
			return categorySavedMsg{err: err}
		}
		return categorySavedMsg{note: "removed category " + name}
	}
}
