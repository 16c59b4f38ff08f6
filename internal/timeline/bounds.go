package timeline

import "time"

// Bounds is the visible start/end date window of the timeline. It is
// derived from the loaded document's event extents once per document load
// and does not grow when later edits move events.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the date falls inside the window, inclusive.
func (b Bounds) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(b.Start) && !d.After(b.End)
}

// Days returns the whole-day span of the window.
func (b Bounds) Days() int {
	return DaysBetween(b.Start, b.End)
}

// DefaultBounds is the window used when a document has no events:
// the full calendar year containing now.
func DefaultBounds(now time.Time) Bounds {
	return Bounds{
		Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// CalculateBounds derives the timeline window from the initial event set:
// the earliest start expanded down to the first day of its month and the
// latest end expanded up to the last day of its month.
func CalculateBounds(events []Event, now time.Time) Bounds {
	if len(events) == 0 {
		return DefaultBounds(now)
	}

	minStart := DateOnly(events[0].Start)
	maxEnd := DateOnly(events[0].End)
	for _, e := range events[1:] {
		if s := DateOnly(e.Start); s.Before(minStart) {
			minStart = s
		}
		if d := DateOnly(e.End); d.After(maxEnd) {
			maxEnd = d
		}
	}

	return Bounds{
		Start: time.Date(minStart.Year(), minStart.Month(), 1, 0, 0, 0, 0, time.UTC),
		// Day zero of the following month is the last day of this one.
		End: time.Date(maxEnd.Year(), maxEnd.Month()+1, 0, 0, 0, 0, 0, time.UTC),
	}
}
