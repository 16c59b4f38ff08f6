// Package timeline implements the in-memory timeline editing engine:
// the row/event data model, the date-to-pixel coordinate mapping, the
// drag and resize interaction logic, and snapshot-based undo/redo.
package timeline

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Color selects the palette entry used to draw an event bar.
type Color int

const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	default:
		return "default"
	}
}

// ParseColor maps a color name to a Color. Unknown names fall back to
// the default palette entry.
func ParseColor(s string) Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return ColorBlue
	case "green":
		return ColorGreen
	case "red":
		return ColorRed
	default:
		return ColorDefault
	}
}

// Colors lists the selectable palette entries in form order.
func Colors() []Color {
	return []Color{ColorBlue, ColorGreen, ColorRed, ColorDefault}
}

// Row is a horizontal lane grouping events.
type Row struct {
	ID    string
	Label string
}

// Event is a date-ranged, colored, labeled bar assigned to exactly one row.
// Start and End are date-only values at midnight UTC.
type Event struct {
	ID    string
	RowID string
	Label string
	Start time.Time
	End   time.Time
	Color Color
}

// DurationDays returns the whole-day span of the event. A range with
// End before Start counts as zero days.
func (e Event) DurationDays() int {
	if e.End.Before(e.Start) {
		return 0
	}
	return DaysBetween(e.Start, e.End)
}

var idCounter uint64

// NewID returns a fresh unique id token with the given prefix.
// Uniqueness is per-process, not cryptographic.
func NewID(prefix string) string {
	n := atomic.AddUint64(&idCounter, 1)
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), n)
}

func copyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

func copyEvents(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
