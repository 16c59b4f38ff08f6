package ui

import (
	"fmt"
	"strings"

	"plotline/internal/timeline"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldLabel = iota
	fieldStart
	fieldEnd
	fieldColor
	fieldCount
)

// eventForm edits one event draft. Submission is validated by the
// editor; on failure the form keeps its values so the user can correct
// them in place.
type eventForm struct {
	draft  timeline.EventDraft
	inputs []textinput.Model
	focus  int
	err    error
}

func newEventForm(draft timeline.EventDraft) *eventForm {
	f := &eventForm{
		draft:  draft,
		inputs: make([]textinput.Model, fieldCount),
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 30
		f.inputs[i] = ti
	}

	f.inputs[fieldLabel].Placeholder = "Event label"
	f.inputs[fieldLabel].SetValue(draft.Label)
	f.inputs[fieldStart].Placeholder = timeline.FormDateLayout
	f.inputs[fieldStart].SetValue(draft.Start.Format(timeline.FormDateLayout))
	f.inputs[fieldEnd].Placeholder = timeline.FormDateLayout
	f.inputs[fieldEnd].SetValue(draft.End.Format(timeline.FormDateLayout))
	f.inputs[fieldColor].Placeholder = "default"
	f.inputs[fieldColor].SetValue(draft.Color.String())

	f.inputs[fieldLabel].Focus()
	return f
}

func (f *eventForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return nil

	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *eventForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *eventForm) submission() timeline.FormSubmission {
	return timeline.FormSubmission{
		Label: f.inputs[fieldLabel].Value(),
		Start: f.inputs[fieldStart].Value(),
		End:   f.inputs[fieldEnd].Value(),
		Color: f.inputs[fieldColor].Value(),
	}
}

func (m *Model) viewEventForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	title := "Edit Event"
	if f.draft.Adding {
		title = "New Event"
	}

	row := f.draft.RowID
	if r, ok := m.editor.RowByID(f.draft.RowID); ok {
		row = r.Label
	}

	names := [fieldCount]string{"Label", "Start", "End", "Color"}
	var sections []string
	sections = append(sections, m.styles.Header.Render(title))
	sections = append(sections, m.styles.Help.Render("Row: "+row))
	sections = append(sections, "")

	for i, input := range f.inputs {
		name := names[i]
		if i == fieldColor {
			name = fmt.Sprintf("Color (%s)", strings.Join(colorNames(), "/"))
		}
		sections = append(sections, m.styles.Normal.Render(name))
		sections = append(sections, input.View())
	}

	if f.err != nil {
		sections = append(sections, "")
		sections = append(sections, m.styles.Error.Render(f.err.Error()))
	}

	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("tab:next field  enter:save  esc:cancel"))

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func colorNames() []string {
	var names []string
	for _, c := range timeline.Colors() {
		names = append(names, c.String())
	}
	return names
}

// renameField is the single-input inline row rename.
type renameField struct {
	input textinput.Model
}

func newRenameField(current string) *renameField {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return &renameField{input: ti}
}

func (r *renameField) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

func (r *renameField) value() string {
	return r.input.Value()
}

func (m *Model) viewRowRename() string {
	sections := []string{
		m.styles.Header.Render("Rename Row"),
		"",
		m.renameInput.input.View(),
		"",
		m.styles.Help.Render("enter:save  esc:cancel"),
	}
	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
