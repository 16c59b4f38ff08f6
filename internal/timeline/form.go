package timeline

import (
	"fmt"
	"strings"
	"time"
)

// FormDateLayout is the date format the edit form accepts.
const FormDateLayout = "2006-01-02"

// EventDraft is the payload handed to the edit form: either a copy of an
// existing event or a provisional new one that is not in the store yet.
type EventDraft struct {
	EventID string
	RowID   string
	Label   string
	Start   time.Time
	End     time.Time
	Color   Color
	Adding  bool
}

// FormSubmission carries the raw field values of a submitted edit form.
type FormSubmission struct {
	Label string
	Start string
	End   string
	Color string
}

// ParseFormDate parses a YYYY-MM-DD form field into a date-only value.
func ParseFormDate(s string) (time.Time, error) {
	t, err := time.Parse(FormDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// NewEventDraft builds the provisional event an add gesture opens in the
// edit form. The draft targets the first row, starts today (or at the
// timeline start when today is out of bounds), and spans the default
// duration. Nothing is committed to the store until the form is saved.
func (e *Editor) NewEventDraft() (EventDraft, error) {
	if len(e.store.rows) == 0 {
		return EventDraft{}, ErrNoRows
	}
	start := DateOnly(e.now())
	if !e.bounds.Contains(start) {
		start = e.bounds.Start
	}
	return EventDraft{
		EventID: NewID("event"),
		RowID:   e.store.rows[0].ID,
		Start:   start,
		End:     start.AddDate(0, 0, e.defaultEventDays),
		Color:   ColorDefault,
		Adding:  true,
	}, nil
}

// EditEventDraft builds a draft from an existing event for the edit form.
func (e *Editor) EditEventDraft(id string) (EventDraft, bool) {
	ev, ok := e.store.eventByID(id)
	if !ok {
		return EventDraft{}, false
	}
	return EventDraft{
		EventID: ev.ID,
		RowID:   ev.RowID,
		Label:   ev.Label,
		Start:   ev.Start,
		End:     ev.End,
		Color:   ev.Color,
	}, true
}

// SaveDraft validates a form submission and commits it: existing events
// are replaced by id, add sessions append a new event with a fresh id
// distinct from the provisional one. Validation failures leave the store
// untouched so the form can retain its state for correction.
func (e *Editor) SaveDraft(d EventDraft, sub FormSubmission) (Event, error) {
	start, err := ParseFormDate(sub.Start)
	if err != nil {
		return Event{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidDateRange, sub.Start)
	}
	end, err := ParseFormDate(sub.End)
	if err != nil {
		return Event{}, fmt.Errorf("%w: invalid end date %q", ErrInvalidDateRange, sub.End)
	}
	if end.Before(start) {
		return Event{}, ErrInvalidDateRange
	}

	label := strings.TrimSpace(sub.Label)
	if label == "" {
		if d.Adding {
			label = "New Event"
		} else {
			label = "Untitled Event"
		}
	}

	ev := Event{
		RowID: d.RowID,
		Label: label,
		Start: start,
		End:   end,
		Color: ParseColor(sub.Color),
	}

	if d.Adding {
		ev.ID = NewID("event")
		e.apply(func(s *store) {
			s.addEvent(ev)
			s.selectedID = ev.ID
		})
		return ev, nil
	}

	existing, ok := e.store.eventByID(d.EventID)
	if !ok {
		return Event{}, fmt.Errorf("event %s no longer exists", d.EventID)
	}
	ev.ID = existing.ID
	ev.RowID = existing.RowID
	e.apply(func(s *store) {
		s.updateEvent(ev)
	})
	return ev, nil
}
