package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"plotline/internal/timeline"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

const (
	labelGutter = 16 // Left column reserved for row labels
	headerRows  = 1  // Month marker line
	statusRows  = 2  // Status + help lines at the bottom
)

// renderEditorView renders the timeline editor using a lipgloss Canvas.
func (m *Model) renderEditorView() string {
	var layers []*lipgloss.Layer

	layers = append(layers, m.createHeaderLayers()...)
	layers = append(layers, m.createGridLayers()...)
	layers = append(layers, m.createRowLayers()...)
	layers = append(layers, m.createEventLayers()...)
	layers = append(layers, m.createStatusLayers()...)

	canvas := lipgloss.NewCanvas(layers...)
	return canvas.Render()
}

// viewportWidth is the number of columns available for the timeline
// itself, to the right of the label gutter.
func (m *Model) viewportWidth() int {
	w := m.width - labelGutter
	if w < 1 {
		w = 1
	}
	return w
}

// createHeaderLayers renders the zoom indicator and one label per month.
func (m *Model) createHeaderLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	zoom := fmt.Sprintf(" %d%%", m.editor.ZoomPercent())
	layers = append(layers, lipgloss.NewLayer(m.styles.Help.Render(zoom)).X(0).Y(0).Z(10))

	for _, marker := range m.editor.TimeMarkers() {
		x := labelGutter + int(math.Round(marker.Left)) - m.scrollX
		if x < labelGutter || x >= m.width {
			continue
		}
		label := marker.Label
		if x+len(label) > m.width {
			label = truncate.String(label, uint(m.width-x))
		}
		layers = append(layers, lipgloss.NewLayer(m.styles.Header.Render(label)).X(x).Y(0).Z(1))
	}

	return layers
}

// createGridLayers draws a vertical rule at every month boundary and at
// today's date, spanning the row lanes.
func (m *Model) createGridLayers() []*lipgloss.Layer {
	laneHeight := len(m.editor.Rows()) * m.config.RowHeight
	if laneHeight == 0 {
		return nil
	}

	rule := strings.TrimRight(strings.Repeat("│\n", laneHeight), "\n")

	var layers []*lipgloss.Layer
	for _, marker := range m.editor.TimeMarkers() {
		x := labelGutter + int(math.Round(marker.Left)) - m.scrollX
		if x < labelGutter || x >= m.width {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(m.styles.Grid.Render(rule)).X(x).Y(headerRows).Z(0))
	}

	if offset, ok := m.editor.TodayOffset(); ok {
		x := labelGutter + int(math.Round(offset)) - m.scrollX
		if x >= labelGutter && x < m.width {
			layers = append(layers, lipgloss.NewLayer(m.styles.Today.Render(rule)).X(x).Y(headerRows).Z(1))
		}
	}

	return layers
}

// createRowLayers renders the row label gutter. The row under the
// cursor is highlighted.
func (m *Model) createRowLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	for i, row := range m.editor.Rows() {
		label := truncate.String(row.Label, uint(labelGutter-2))
		style := m.styles.Label
		if i == m.rowCursor {
			style = m.styles.Selected
		}
		y := headerRows + i*m.config.RowHeight
		layers = append(layers, lipgloss.NewLayer(style.Render(label)).X(0).Y(y).Z(10))
	}

	return layers
}

// createEventLayers renders one bar per event. The event caught in an
// active drag session renders at its preview position instead of its
// committed one.
func (m *Model) createEventLayers() []*lipgloss.Layer {
	rowIndex := map[string]int{}
	for i, r := range m.editor.Rows() {
		rowIndex[r.ID] = i
	}

	var layers []*lipgloss.Layer
	z := 2

	for _, ev := range m.sortedEvents() {
		display := ev
		if m.drag != nil && m.drag.EventID() == ev.ID {
			display.Start, display.End = m.editor.PreviewDrag(m.drag)
			if m.drag.Kind() == timeline.DragMove {
				display.RowID = m.drag.TargetRowID()
			}
		}

		ri, ok := rowIndex[display.RowID]
		if !ok {
			continue
		}

		left, width := m.editor.EventGeometry(display)
		x := labelGutter + int(math.Round(left)) - m.scrollX
		w := int(math.Round(width))
		if w < int(timeline.MinEventWidth) {
			w = int(timeline.MinEventWidth)
		}

		// Clip to the viewport.
		right := x + w
		if right <= labelGutter || x >= m.width {
			continue
		}
		if x < labelGutter {
			x = labelGutter
		}
		if right > m.width {
			right = m.width
		}
		cellWidth := right - x
		if cellWidth < 1 {
			continue
		}

		selected := ev.ID == m.editor.SelectedEventID()
		text := truncate.String(display.Label, uint(cellWidth))
		if selected && cellWidth >= 4 {
			text = "◀" + truncate.String(display.Label, uint(cellWidth-2)) + "▶"
		}

		style, ok := m.styles.Events[display.Color]
		if !ok {
			style = m.styles.Events[timeline.ColorDefault]
		}
		if selected {
			style = m.styles.Selected
		}
		block := style.Width(cellWidth).Render(text)

		y := headerRows + ri*m.config.RowHeight
		layers = append(layers, lipgloss.NewLayer(block).X(x).Y(y).Z(z))
		z++
	}

	return layers
}

// createStatusLayers renders the two status lines at the bottom.
func (m *Model) createStatusLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := m.height - statusRows
	if y < headerRows {
		y = headerRows
	}

	bounds := m.editor.Bounds()
	status := fmt.Sprintf(" %d rows · %d events  %s – %s",
		len(m.editor.Rows()),
		len(m.editor.Events()),
		bounds.Start.Format(m.config.DateFormat),
		bounds.End.Format(m.config.DateFormat))

	if m.drag != nil {
		start, end := m.editor.PreviewDrag(m.drag)
		verb := "Move"
		if m.drag.Kind() == timeline.DragResize {
			verb = "Resize"
		}
		status = fmt.Sprintf(" %s: %s – %s  (enter to commit, esc to cancel)",
			verb,
			start.Format(m.config.DateFormat),
			end.Format(m.config.DateFormat))
	} else if id := m.editor.SelectedEventID(); id != "" {
		if ev, ok := m.editor.EventByID(id); ok {
			status = fmt.Sprintf(" %s  %s – %s (%dd)",
				ev.Label,
				ev.Start.Format(m.config.DateFormat),
				ev.End.Format(m.config.DateFormat),
				ev.DurationDays())
		}
	}

	layers = append(layers, lipgloss.NewLayer(m.styles.Normal.Render(status)).X(0).Y(y).Z(2000))

	if m.message != "" {
		layers = append(layers, lipgloss.NewLayer(m.styles.Message.Render(m.message)).X(0).Y(y+1).Z(2000))
	} else {
		helpText := "h/l:select  j/k:row  g:grab  [/]:resize  a:add  enter:edit  d:del  u/U:undo/redo  +/-:zoom  T:gallery  ?:help  q:quit"
		pad := m.width - len(helpText)
		if pad < 0 {
			pad = 0
		}
		rightAligned := m.styles.Help.Render(strings.Repeat(" ", pad) + helpText)
		layers = append(layers, lipgloss.NewLayer(rightAligned).X(0).Y(y+1).Z(2000))
	}

	return layers
}

// sortedEvents returns all events ordered by start date, then by id for
// stability.
func (m *Model) sortedEvents() []timeline.Event {
	events := m.editor.Events()
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].ID < events[j].ID
	})
	return events
}

// ensureSelectedVisible scrolls horizontally so the selected event's bar
// stays inside the viewport.
func (m *Model) ensureSelectedVisible() {
	id := m.editor.SelectedEventID()
	if id == "" || m.width == 0 {
		return
	}
	ev, ok := m.editor.EventByID(id)
	if !ok {
		return
	}

	left, width := m.editor.EventGeometry(ev)
	x := int(math.Round(left))
	w := int(math.Round(width))
	viewport := m.viewportWidth()

	if x < m.scrollX {
		m.scrollX = x
	} else if x+w > m.scrollX+viewport {
		m.scrollX = x + w - viewport
	}
	m.clampScroll()
}

// clampScroll keeps the horizontal scroll inside the timeline's total
// width.
func (m *Model) clampScroll() {
	maxScroll := int(math.Ceil(m.editor.TotalWidth())) - m.viewportWidth()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollX > maxScroll {
		m.scrollX = maxScroll
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
}
