package timeline

import (
	"math"
	"time"
)

// Handle identifies which end of an event a resize gesture grabs.
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
)

// DragKind distinguishes move gestures from resize gestures.
type DragKind int

const (
	DragMove DragKind = iota
	DragResize
)

// DragSession captures an event's original geometry at gesture start and
// accumulates the pointer delta until commit. The store is not touched
// while a session is in progress; CommitDrag applies the result as one
// atomic history entry.
type DragSession struct {
	kind    DragKind
	handle  Handle
	eventID string

	origStart time.Time
	origEnd   time.Time
	origRowID string

	targetRowID string
	deltaX      float64
}

// BeginMove starts a move drag session for the event.
func (e *Editor) BeginMove(id string) (*DragSession, bool) {
	ev, ok := e.store.eventByID(id)
	if !ok {
		return nil, false
	}
	return &DragSession{
		kind:        DragMove,
		eventID:     ev.ID,
		origStart:   ev.Start,
		origEnd:     ev.End,
		origRowID:   ev.RowID,
		targetRowID: ev.RowID,
	}, true
}

// BeginResize starts a resize drag session on one handle of the event.
func (e *Editor) BeginResize(id string, h Handle) (*DragSession, bool) {
	ev, ok := e.store.eventByID(id)
	if !ok {
		return nil, false
	}
	return &DragSession{
		kind:        DragResize,
		handle:      h,
		eventID:     ev.ID,
		origStart:   ev.Start,
		origEnd:     ev.End,
		origRowID:   ev.RowID,
		targetRowID: ev.RowID,
	}, true
}

func (s *DragSession) Kind() DragKind      { return s.kind }
func (s *DragSession) Handle() Handle      { return s.handle }
func (s *DragSession) EventID() string     { return s.eventID }
func (s *DragSession) TargetRowID() string { return s.targetRowID }
func (s *DragSession) DeltaX() float64     { return s.deltaX }

// MoveBy accumulates a horizontal pointer delta in pixels.
func (s *DragSession) MoveBy(px float64) {
	s.deltaX += px
}

// SetTargetRow records the row under the pointer. Only move sessions use
// the target row at commit.
func (s *DragSession) SetTargetRow(rowID string) {
	s.targetRowID = rowID
}

// PreviewDrag computes the dates the session would commit, without
// mutating the store. The presentation layer may show these while the
// drag is in progress; the document itself changes only at commit.
func (e *Editor) PreviewDrag(s *DragSession) (start, end time.Time) {
	start, end, _ = e.dragResult(s)
	return start, end
}

// CommitDrag ends a drag session and applies its result as a single
// store mutation. A session whose delta resolves to no change (including
// degenerate NaN deltas) commits as a no-op with no history entry.
func (e *Editor) CommitDrag(s *DragSession) bool {
	if s == nil {
		return false
	}
	ev, ok := e.store.eventByID(s.eventID)
	if !ok {
		return false
	}

	start, end, rowID := e.dragResult(s)
	if start.Equal(ev.Start) && end.Equal(ev.End) && rowID == ev.RowID {
		return false
	}

	ev.Start = start
	ev.End = end
	ev.RowID = rowID
	e.apply(func(st *store) {
		st.updateEvent(ev)
	})
	return true
}

// dragResult resolves a session's accumulated delta into final dates and
// target row, applying the timeline-start clamp and the minimum-duration
// correction.
func (e *Editor) dragResult(s *DragSession) (start, end time.Time, rowID string) {
	start, end, rowID = s.origStart, s.origEnd, s.origRowID

	if math.IsNaN(s.deltaX) || math.IsInf(s.deltaX, 0) {
		return start, end, rowID
	}
	ppd := e.PixelsPerDay()

	switch s.kind {
	case DragMove:
		newStart := OffsetToDate(s.origStart, s.deltaX, ppd)
		if newStart.Before(e.bounds.Start) {
			newStart = e.bounds.Start
		}
		// Duration is preserved exactly.
		start = newStart
		end = newStart.AddDate(0, 0, DaysBetween(s.origStart, s.origEnd))
		if _, ok := e.store.rowByID(s.targetRowID); ok {
			rowID = s.targetRowID
		}

	case DragResize:
		if s.handle == HandleStart {
			newStart := OffsetToDate(s.origStart, s.deltaX, ppd)
			if newStart.Before(e.bounds.Start) {
				newStart = e.bounds.Start
			}
			start = newStart
			if !start.Before(end) {
				end = start.AddDate(0, 0, e.minEventDays)
			}
		} else {
			newEnd := OffsetToDate(s.origEnd, s.deltaX, ppd)
			if !newEnd.After(start) {
				newEnd = start.AddDate(0, 0, e.minEventDays)
			}
			end = newEnd
		}
	}

	return start, end, rowID
}
