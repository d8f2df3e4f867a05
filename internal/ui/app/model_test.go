package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	categorydto "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/dto"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/config"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/components"
	meetingview "github.com/Andrewsimsd/meeting-cost-tracker/internal/ui/views/meeting"
)

type fakeMeeting struct {
	starts, stops, resets, clears int
	added                         []dto.AddAttendeesInput
	removed                       []dto.RemoveAttendeesInput
	status                        dto.StatusOutput
	reset                         dto.ResetOutput
}

func (f *fakeMeeting) Start(context.Context) (dto.StatusOutput, error) {
	f.starts++
	s := f.status
	s.State = "running"
	return s, nil
}

func (f *fakeMeeting) Stop(context.Context) (dto.StatusOutput, error) {
	f.stops++
	s := f.status
	s.State = "stopped"
	return s, nil
}

func (f *fakeMeeting) Reset(context.Context) (dto.ResetOutput, error) {
	f.resets++
	return f.reset, nil
}

func (f *fakeMeeting) AddAttendees(_ context.Context, input dto.AddAttendeesInput) (dto.StatusOutput, error) {
	f.added = append(f.added, input)
	return f.status, nil
}

func (f *fakeMeeting) RemoveAttendees(_ context.Context, input dto.RemoveAttendeesInput) (dto.StatusOutput, error) {
	f.removed = append(f.removed, input)
	return f.status, nil
}

func (f *fakeMeeting) ClearRoster(context.Context) (dto.StatusOutput, error) {
	f.clears++
	return f.status, nil
}

func (f *fakeMeeting) Status(context.Context) (dto.StatusOutput, error) {
	return f.status, nil
}

func (f *fakeMeeting) Roster(context.Context) ([]dto.RosterEntryOutput, error) {
	return nil, nil
}

func (f *fakeMeeting) History(context.Context, int) ([]dto.MeetingRecordOutput, error) {
	return nil, nil
}

type fakeCategory struct {
	added   []categorydto.AddInput
	removed []string
}

func (f *fakeCategory) Add(_ context.Context, input categorydto.AddInput) (categorydto.CategoryOutput, error) {
	f.added = append(f.added, input)
	return categorydto.CategoryOutput{
		Name:         input.Name,
		AnnualSalary: input.AnnualSalary,
		HourlyRate:   input.AnnualSalary / 2080,
	}, nil
}

func (f *fakeCategory) Remove(_ context.Context, name string) error {
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeCategory) List(context.Context) ([]categorydto.CategoryOutput, error) {
	return nil, nil
}

func newTestModel(fm *fakeMeeting, fc *fakeCategory) Model {
	cfg := config.Config{TickInterval: time.Millisecond, Currency: "$"}
	return NewModel(cfg, fc, fm, "")
}

// drain executes a command tree and collects the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})
	if m.activeTab != tabMeeting {
		t.Error("new model should open on the Meeting tab")
	}
	if m.status != "ready" {
		t.Errorf("status = %q, want ready", m.status)
	}
	if m.lastState != "idle" {
		t.Errorf("lastState = %q, want idle", m.lastState)
	}

	withNotice := NewModel(config.Config{TickInterval: time.Millisecond, Currency: "$"},
		&fakeCategory{}, &fakeMeeting{}, "restored 2 attendee entries")
	if withNotice.status != "restored 2 attendee entries" {
		t.Errorf("status = %q, want the bootstrap notice", withNotice.status)
	}
}

func TestTabKeyCyclesTabs(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	model := updated.(Model)
	if model.activeTab != tabCategories {
		t.Error("tab should move to Categories")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	if model.activeTab != tabHistory {
		t.Error("tab again should move to History")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	if model.activeTab != tabMeeting {
		t.Error("tab should wrap back to Meeting")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model = updated.(Model)
	if model.activeTab != tabHistory {
		t.Error("shift+tab should move backwards")
	}
}

func TestStartKeyOnMeetingTab(t *testing.T) {
	fm := &fakeMeeting{}
	m := newTestModel(fm, &fakeCategory{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := updated.(Model)
	msgs := drain(cmd)
	if fm.starts != 1 {
		t.Fatalf("starts = %d, want 1", fm.starts)
	}

	for _, msg := range msgs {
		if done, ok := msg.(actionDoneMsg); ok {
			updated, _ = model.Update(done)
			model = updated.(Model)
		}
	}
	if model.status != "meeting started" {
		t.Errorf("status = %q, want meeting started", model.status)
	}
	if model.lastState != "running" {
		t.Errorf("lastState = %q, want running", model.lastState)
	}
}

func TestTimerKeysIgnoredOffMeetingTab(t *testing.T) {
	fm := &fakeMeeting{}
	m := newTestModel(fm, &fakeCategory{})
	m.activeTab = tabCategories

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	drain(cmd)
	if fm.starts != 0 {
		t.Errorf("starts = %d, want 0 on the Categories tab", fm.starts)
	}
}

func TestAddCategoryPromptFlow(t *testing.T) {
	fc := &fakeCategory{}
	m := newTestModel(&fakeMeeting{}, fc)
	m.activeTab = tabCategories

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	model := updated.(Model)
	if !model.prompt.Visible() {
		t.Fatal("a should open the add-category prompt")
	}

	// while the prompt is open all keys go to it
	for _, r := range "Engineer:120000" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		model = updated.(Model)
	}
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.prompt.Visible() {
		t.Fatal("enter should close the prompt")
	}

	var submit components.SubmitMsg
	found := false
	for _, msg := range drain(cmd) {
		if s, ok := msg.(components.SubmitMsg); ok {
			submit = s
			found = true
		}
	}
	if !found {
		t.Fatal("enter should emit a submit message")
	}

	updated, cmd = model.Update(submit)
	model = updated.(Model)
	msgs := drain(cmd)
	if len(fc.added) != 1 || fc.added[0].Name != "Engineer" || fc.added[0].AnnualSalary != 120000 {
		t.Fatalf("unexpected adds: %+v", fc.added)
	}

	for _, msg := range msgs {
		if saved, ok := msg.(categorySavedMsg); ok {
			updated, _ = model.Update(saved)
			model = updated.(Model)
		}
	}
	if !strings.Contains(model.status, "added Engineer") {
		t.Errorf("status = %q, want added Engineer note", model.status)
	}
}

func TestMalformedPromptInputShowsError(t *testing.T) {
	fm := &fakeMeeting{}
	m := newTestModel(fm, &fakeCategory{})

	updated, cmd := m.Update(components.SubmitMsg{ID: promptAddAttendees, Input: "Engineer"})
	model := updated.(Model)
	if cmd != nil {
		t.Error("malformed input must not issue a command")
	}
	if model.status != "expected category:count" {
		t.Errorf("status = %q", model.status)
	}
	if len(fm.added) != 0 {
		t.Errorf("adds = %d, want 0", len(fm.added))
	}
}

func TestAttendeePromptSubmits(t *testing.T) {
	fm := &fakeMeeting{}
	m := newTestModel(fm, &fakeCategory{})

	_, cmd := m.Update(components.SubmitMsg{ID: promptAddAttendees, Input: "Engineer : 3"})
	drain(cmd)
	if len(fm.added) != 1 || fm.added[0].CategoryName != "Engineer" || fm.added[0].Count != 3 {
		t.Fatalf("unexpected adds: %+v", fm.added)
	}
}

func TestStatusMsgUpdatesStateAndRearms(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	updated, cmd := m.Update(meetingview.StatusMsg{Status: dto.StatusOutput{State: "running"}})
	model := updated.(Model)
	if model.lastState != "running" {
		t.Errorf("lastState = %q, want running", model.lastState)
	}
	if cmd == nil {
		t.Error("status message must re-arm the poll loop")
	}
}

func TestResetDoneReportsRecord(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	updated, cmd := m.Update(resetDoneMsg{out: dto.ResetOutput{
		Status:   dto.StatusOutput{State: "idle"},
		Recorded: true,
		Record: dto.MeetingRecordOutput{
			Duration:  30 * time.Minute,
			TotalCost: 57.69,
		},
	}})
	model := updated.(Model)
	if !strings.Contains(model.status, "recorded 30m0s") {
		t.Errorf("status = %q, want recorded note", model.status)
	}
	if cmd == nil {
		t.Error("a recorded reset should refresh the history view")
	}

	updated, _ = model.Update(resetDoneMsg{out: dto.ResetOutput{
		Status: dto.StatusOutput{State: "idle"},
	}})
	model = updated.(Model)
	if model.status != "reset (nothing recorded)" {
		t.Errorf("status = %q", model.status)
	}
}

func TestActionErrorShowsInStatusBar(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	updated, _ := m.Update(actionDoneMsg{err: errors.New("category \"Ghost\" not found")})
	model := updated.(Model)
	if !strings.Contains(model.status, "Ghost") {
		t.Errorf("status = %q, want the error text", model.status)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a quit message")
	}
}

func TestViewRendersTabsAfterResize(t *testing.T) {
	m := newTestModel(&fakeMeeting{}, &fakeCategory{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model := updated.(Model)
	view := model.View()
	if !strings.Contains(view, "Meeting") || !strings.Contains(view, "Categories") || !strings.Contains(view, "History") {
		t.Error("view should render all tab labels")
	}
}
