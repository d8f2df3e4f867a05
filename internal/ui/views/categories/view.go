package categories

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the category
// use-case. Add and remove go through the app model's prompt flow.
type Port interface {
	List(ctx context.Context) ([]dto.CategoryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg is sent when the category catalog finishes loading.
type LoadedMsg struct {
	Categories []dto.CategoryOutput
	Err        error
}

// ─── list item ───────────────────────────────────────────────────────────────

type categoryItem struct {
	category dto.CategoryOutput
	currency string
}

func (i categoryItem) Title() string { return i.category.Name }
func (i categoryItem) Description() string {
	return fmt.Sprintf("%s%.0f/yr · %s%.2f/h",
		i.currency, i.category.AnnualSalary, i.currency, i.category.HourlyRate)
}
func (i categoryItem) FilterValue() string { return i.category.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	currency string
	list     list.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(port Port, currency string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Categories"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, currency: currency, list: l, spinner: sp, loading: true}
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

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Categories — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Categories"
		items := make([]list.Item, len(msg.Categories))
		for i, category := range msg.Categories {
			items[i] = categoryItem{category: category, currency: m.currency}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading categories…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Padding(1).
		Render(m.renderDetail())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Reload returns the command that refreshes the catalog.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// SelectedName returns the highlighted category's name, if any.
func (m Model) SelectedName() (string, bool) {
	if item, ok := m.list.SelectedItem().(categoryItem); ok {
		return item.category.Name, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.width*4/10, m.height)
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(categoryItem)
	if !ok {
		return theme.Muted.Render("No categories yet.\n\na: add a category")
	}
	c := item.category
	return theme.Title.Render(c.Name) + "\n\n" +
		theme.Muted.Render("salary ") + fmt.Sprintf("%s%.2f/yr", m.currency, c.AnnualSalary) + "\n" +
		theme.Muted.Render("rate   ") + fmt.Sprintf("%s%.2f/h", m.currency, c.HourlyRate) + "\n\n" +
		theme.Muted.Render("a: add  d: delete  e: add to meeting")
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.port.List(context.Background())
		return LoadedMsg{Categories: categories, Err: err}
	}
}
