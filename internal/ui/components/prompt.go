package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/theme"
)

// SubmitMsg is emitted when the user confirms the prompt. ID echoes the
// value passed to Open so the caller can route the input.
type SubmitMsg struct {
	ID    string
	Input string
}

// CancelMsg is emitted when the user presses esc.
type CancelMsg struct{ ID string }

var (
	promptStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	promptHintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Prompt is a one-line modal input overlay backed by bubbles/textinput.
// The owning model opens it with an ID, routes all input to it while
// visible, and receives the result as a SubmitMsg or CancelMsg.
type Prompt struct {
	input   textinput.Model
	id      string
	title   string
	hint    string
	visible bool
	width   int
}

// NewPrompt creates an inactive Prompt ready to be opened.
func NewPrompt() Prompt {
	ti := textinput.New()
	ti.CharLimit = 128
	return Prompt{input: ti}
}

// Visible reports whether the prompt is currently shown.
func (p Prompt) Visible() bool { return p.visible }

// Open shows the prompt. seed pre-fills the input with the cursor at the
// end, so callers can offer an editable template like "Engineer:".
func (p *Prompt) Open(id, title, placeholder, seed string) tea.Cmd {
	p.visible = true
	p.id = id
	p.title = title
	p.hint = "enter: confirm  esc: cancel"
	p.input.Placeholder = placeholder
	p.input.SetValue(seed)
	p.input.CursorEnd()
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Prompt) SetWidth(w int) { p.width = w }

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			id := p.id
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return CancelMsg{ID: id} }
		case "enter":
			id := p.id
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return SubmitMsg{ID: id, Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.title) + "\n")
	sb.WriteString("> " + p.input.View() + "\n")
	sb.WriteString(promptHintStyle.Render(p.hint))

	w := p.width
	if w < 20 {
		w = 64
	}
	return promptStyle.Width(w - 2).Render(sb.String())
}
