package timeline

import (
	"testing"
	"time"
)

func TestCalculateBounds(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name      string
		events    []Event
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Empty set falls back to full calendar year",
			events:    nil,
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.December, 31),
		},
		{
			name: "Month-aligned padding around extents",
			events: []Event{
				{Start: date(2024, time.January, 15), End: date(2024, time.February, 3)},
				{Start: date(2024, time.March, 20), End: date(2024, time.March, 25)},
			},
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.March, 31),
		},
		{
			name: "Single event",
			events: []Event{
				{Start: date(2024, time.February, 10), End: date(2024, time.February, 10)},
			},
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name: "End in a 30-day month",
			events: []Event{
				{Start: date(2024, time.April, 2), End: date(2024, time.April, 28)},
			},
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.April, 30),
		},
		{
			name: "Spanning a year boundary",
			events: []Event{
				{Start: date(2023, time.December, 20), End: date(2024, time.January, 10)},
			},
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2024, time.January, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculateBounds(tt.events, now)
			if !b.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", b.Start, tt.wantStart)
			}
			if !b.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", b.End, tt.wantEnd)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Start: date(2024, time.January, 1), End: date(2024, time.March, 31)}

	if !b.Contains(date(2024, time.January, 1)) {
		t.Error("start day should be inside the bounds")
	}
	if !b.Contains(date(2024, time.March, 31)) {
		t.Error("end day should be inside the bounds")
	}
	if b.Contains(date(2023, time.December, 31)) {
		t.Error("day before start should be outside the bounds")
	}
	if b.Contains(date(2024, time.April, 1)) {
		t.Error("day after end should be outside the bounds")
	}
}
