package timeline

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeMarker is one month label on the time axis.
type TimeMarker struct {
	Label string
	Left  float64
}

// Editor owns the document state and funnels every mutation through the
// history manager. It is the single entry point the presentation layer
// talks to.
type Editor struct {
	store   store
	history History
	bounds  Bounds
	zoomIdx int

	basePixelsPerDay float64
	defaultEventDays int
	minEventDays     int
	now              func() time.Time
}

// NewEditor returns an editor holding an empty document with
// default-year bounds.
func NewEditor() *Editor {
	e := &Editor{
		zoomIdx:          DefaultZoomIndex,
		basePixelsPerDay: BasePixelsPerDay,
		defaultEventDays: 7,
		minEventDays:     1,
		now:              time.Now,
	}
	e.bounds = DefaultBounds(e.now())
	return e
}

// SetNow overrides the clock used for today-marker and default
// placement computations.
func (e *Editor) SetNow(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// SetDefaultEventDays overrides the default duration of new events.
func (e *Editor) SetDefaultEventDays(days int) {
	if days > 0 {
		e.defaultEventDays = days
	}
}

// SetBasePixelsPerDay overrides the horizontal scale at 100% zoom.
func (e *Editor) SetBasePixelsPerDay(px float64) {
	if px > 0 {
		e.basePixelsPerDay = px
	}
}

// LoadDocument replaces the live state with a new initial row/event set,
// recomputes the timeline bounds, resets history, and clears selection.
func (e *Editor) LoadDocument(rows []Row, events []Event) {
	e.store.rows = copyRows(rows)
	e.store.events = make([]Event, 0, len(events))
	for _, ev := range events {
		ev.Start = DateOnly(ev.Start)
		ev.End = DateOnly(ev.End)
		e.store.events = append(e.store.events, ev)
	}
	e.store.selectedID = ""
	e.history.Reset()
	e.bounds = CalculateBounds(e.store.events, e.now())
}

// Rows returns a copy of the row list in document order.
func (e *Editor) Rows() []Row {
	return copyRows(e.store.rows)
}

// Events returns a copy of the full event list.
func (e *Editor) Events() []Event {
	return copyEvents(e.store.events)
}

// RowEvents returns the events assigned to one row.
func (e *Editor) RowEvents(rowID string) []Event {
	var out []Event
	for _, ev := range e.store.events {
		if ev.RowID == rowID {
			out = append(out, ev)
		}
	}
	return out
}

// EventByID looks up a live event.
func (e *Editor) EventByID(id string) (Event, bool) {
	return e.store.eventByID(id)
}

// RowByID looks up a live row.
func (e *Editor) RowByID(id string) (Row, bool) {
	return e.store.rowByID(id)
}

// Bounds returns the current timeline window.
func (e *Editor) Bounds() Bounds {
	return e.bounds
}

// --- Selection ---

// SelectEvent marks an event as selected; only the selected event
// exposes resize handles. Unknown ids clear the selection.
func (e *Editor) SelectEvent(id string) {
	if _, ok := e.store.eventByID(id); ok {
		e.store.selectedID = id
	} else {
		e.store.selectedID = ""
	}
}

// ClearSelection drops the current selection.
func (e *Editor) ClearSelection() {
	e.store.selectedID = ""
}

// SelectedEventID returns the selected event id, or "" when nothing is
// selected.
func (e *Editor) SelectedEventID() string {
	return e.store.selectedID
}

// --- Zoom ---

// ZoomLevel returns the current zoom factor.
func (e *Editor) ZoomLevel() float64 {
	return ZoomLevels[e.zoomIdx]
}

// ZoomPercent returns the zoom factor as a rounded percentage.
func (e *Editor) ZoomPercent() int {
	return int(math.Round(e.ZoomLevel() * 100))
}

// ZoomIn steps to the next zoom level. At the maximum it is a no-op.
func (e *Editor) ZoomIn() bool {
	if e.zoomIdx >= len(ZoomLevels)-1 {
		return false
	}
	e.zoomIdx++
	return true
}

// ZoomOut steps to the previous zoom level. At the minimum it is a no-op.
func (e *Editor) ZoomOut() bool {
	if e.zoomIdx <= 0 {
		return false
	}
	e.zoomIdx--
	return true
}

// PixelsPerDay is the zoom-dependent horizontal scale factor.
func (e *Editor) PixelsPerDay() float64 {
	return e.basePixelsPerDay * e.ZoomLevel()
}

// TotalWidth is the pixel width of the full timeline window.
func (e *Editor) TotalWidth() float64 {
	return float64(e.bounds.Days()) * e.PixelsPerDay()
}

// --- Render feed ---

// EventGeometry computes the horizontal bar placement of an event
// relative to the timeline start.
func (e *Editor) EventGeometry(ev Event) (left, width float64) {
	ppd := e.PixelsPerDay()
	left = DateToOffset(ev.Start, e.bounds.Start, ppd)
	width = float64(ev.DurationDays()) * ppd
	if width < MinEventWidth {
		width = MinEventWidth
	}
	return left, width
}

// TimeMarkers returns one marker per month spanning the current bounds.
func (e *Editor) TimeMarkers() []TimeMarker {
	var markers []TimeMarker
	ppd := e.PixelsPerDay()
	cur := time.Date(e.bounds.Start.Year(), e.bounds.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(e.bounds.End) {
		markers = append(markers, TimeMarker{
			Label: cur.Format("Jan '06"),
			Left:  DateToOffset(cur, e.bounds.Start, ppd),
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return markers
}

// TodayOffset returns the pixel offset of the current date, or false
// when today falls outside the bounds.
func (e *Editor) TodayOffset() (float64, bool) {
	today := DateOnly(e.now())
	if !e.bounds.Contains(today) {
		return 0, false
	}
	return DateToOffset(today, e.bounds.Start, e.PixelsPerDay()), true
}

// --- History ---

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the most recent snapshot. Returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	return e.history.Undo(e.snapshot(), e.restore)
}

// Redo re-applies the most recently undone snapshot.
func (e *Editor) Redo() bool {
	return e.history.Redo(e.snapshot(), e.restore)
}

func (e *Editor) snapshot() snapshot {
	return snapshot{
		rows:   copyRows(e.store.rows),
		events: copyEvents(e.store.events),
	}
}

func (e *Editor) restore(s snapshot) {
	e.store.rows = copyRows(s.rows)
	e.store.events = copyEvents(s.events)
	if _, ok := e.store.eventByID(e.store.selectedID); !ok {
		e.store.selectedID = ""
	}
}

// apply records the pre-mutation state, then runs the mutation. Every
// store change outside of undo/redo replay goes through here.
func (e *Editor) apply(mutate func(*store)) {
	e.history.Record(e.snapshot())
	mutate(&e.store)
}

// --- Row operations ---

// AddRow appends a row with an auto-generated label and returns it.
func (e *Editor) AddRow() Row {
	row := Row{
		ID:    NewID("row"),
		Label: fmt.Sprintf("New Row %d", len(e.store.rows)+1),
	}
	e.apply(func(s *store) {
		s.addRow(row)
	})
	return row
}

// RenameRow commits an inline label edit. Empty or unchanged trimmed
// input reverts to the prior label without creating a history entry.
func (e *Editor) RenameRow(id, label string) bool {
	row, ok := e.store.rowByID(id)
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || trimmed == row.Label {
		return false
	}
	e.apply(func(s *store) {
		s.renameRow(id, trimmed)
	})
	return true
}

// DeleteRow removes the row and all events referencing it as one atomic
// history entry. Selection is cleared if the selected event belonged to
// the row.
func (e *Editor) DeleteRow(id string) bool {
	if _, ok := e.store.rowByID(id); !ok {
		return false
	}
	e.apply(func(s *store) {
		s.deleteRow(id)
	})
	return true
}

// --- Event operations ---

// DeleteEvent removes an event by id, clearing the selection if it was
// the deleted event.
func (e *Editor) DeleteEvent(id string) bool {
	if _, ok := e.store.eventByID(id); !ok {
		return false
	}
	e.apply(func(s *store) {
		s.deleteEvent(id)
	})
	return true
}

// DeleteSelected removes the currently selected event, if any.
func (e *Editor) DeleteSelected() bool {
	if e.store.selectedID == "" {
		return false
	}
	return e.DeleteEvent(e.store.selectedID)
}
