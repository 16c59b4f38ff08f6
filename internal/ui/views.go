package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) viewGallery() string {
	var lines []string

	lines = append(lines, m.styles.Header.Render("Plotline Templates"))
	lines = append(lines, "")

	if len(m.templates) == 0 {
		lines = append(lines, m.styles.Help.Render("(no templates found)"))
	}

	for i, tpl := range m.templates {
		name := tpl.Name
		if i == m.galleryIndex {
			name = m.styles.Selected.Render(" " + name + " ")
		} else {
			name = m.styles.Normal.Render(" " + name)
		}
		lines = append(lines, name)

		desc := tpl.Description
		if desc == "" {
			desc = fmt.Sprintf("%d rows, %d events", len(tpl.Rows), len(tpl.Events))
		}
		lines = append(lines, m.styles.Help.Render("   "+desc))
	}

	lines = append(lines, "")
	hint := "j/k:select  enter:open"
	if m.loaded {
		hint += "  esc:back to editor"
	}
	hint += "  q:quit"
	lines = append(lines, m.styles.Help.Render(hint))

	if m.message != "" {
		lines = append(lines, "")
		lines = append(lines, m.styles.Message.Render(m.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("Plotline Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		m.styles.Help.Render("  h/l/←/→ - Select previous/next event"),
		m.styles.Help.Render("  j/k/↓/↑ - Move row cursor"),
		m.styles.Help.Render("  H/L     - Scroll timeline"),
		m.styles.Help.Render("  +/-     - Zoom in/out"),
		"",
		m.styles.Normal.Render("Editing:"),
		m.styles.Help.Render("  a       - Add event"),
		m.styles.Help.Render("  enter   - Edit selected event"),
		m.styles.Help.Render("  d       - Delete selected event"),
		m.styles.Help.Render("  A       - Add row"),
		m.styles.Help.Render("  R       - Rename row under cursor"),
		m.styles.Help.Render("  D       - Delete row under cursor"),
		"",
		m.styles.Normal.Render("Dragging:"),
		m.styles.Help.Render("  g       - Grab selected event (then h/l to move, j/k to change row)"),
		m.styles.Help.Render("  [ / ]   - Resize start/end handle (then h/l)"),
		m.styles.Help.Render("  enter   - Commit drag"),
		m.styles.Help.Render("  esc     - Cancel drag"),
		"",
		m.styles.Normal.Render("Other:"),
		m.styles.Help.Render("  u / U   - Undo / redo"),
		m.styles.Help.Render("  T       - Template gallery"),
		m.styles.Help.Render("  ?       - Toggle help"),
		m.styles.Help.Render("  q       - Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) viewConfirmDelete() string {
	what := "event"
	warning := ""
	if m.confirm.isRow {
		what = "row"
		warning = "All events in this row will be deleted too."
	}

	sections := []string{
		m.styles.Header.Render(fmt.Sprintf("Delete %s %q?", what, m.confirm.label)),
	}
	if warning != "" {
		sections = append(sections, m.styles.Error.Render(warning))
	}
	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("y:delete  n/esc:cancel"))

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
