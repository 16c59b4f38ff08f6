package timeline

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "Same day",
			a:    date(2024, time.January, 15),
			b:    date(2024, time.January, 15),
			want: 0,
		},
		{
			name: "One week forward",
			a:    date(2024, time.January, 1),
			b:    date(2024, time.January, 8),
			want: 7,
		},
		{
			name: "Backward is negative",
			a:    date(2024, time.March, 10),
			b:    date(2024, time.March, 3),
			want: -7,
		},
		{
			name: "Across leap day",
			a:    date(2024, time.February, 28),
			b:    date(2024, time.March, 1),
			want: 2,
		},
		{
			name: "Time of day is stripped",
			a:    time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "Across DST transition in local time",
			a:    time.Date(2024, time.March, 9, 12, 0, 0, 0, time.Local),
			b:    time.Date(2024, time.March, 11, 12, 0, 0, 0, time.Local),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateToOffset(t *testing.T) {
	origin := date(2024, time.January, 1)

	got := DateToOffset(date(2024, time.January, 11), origin, 3.0)
	if got != 30 {
		t.Errorf("DateToOffset() = %v, want 30", got)
	}

	got = DateToOffset(origin, origin, 3.0)
	if got != 0 {
		t.Errorf("DateToOffset() at origin = %v, want 0", got)
	}
}

func TestOffsetToDate(t *testing.T) {
	origin := date(2024, time.January, 1)

	tests := []struct {
		name   string
		offset float64
		ppd    float64
		want   time.Time
	}{
		{"Exact days", 30, 3.0, date(2024, time.January, 11)},
		{"Rounds to nearest day", 4, 3.0, date(2024, time.January, 2)},
		{"Rounds half up", 4.5, 3.0, date(2024, time.January, 3)},
		{"Negative offset", -9, 3.0, date(2023, time.December, 29)},
		{"NaN offset resolves to origin", math.NaN(), 3.0, origin},
		{"Zero scale resolves to origin", 30, 0, origin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetToDate(origin, tt.offset, tt.ppd)
			if !got.Equal(tt.want) {
				t.Errorf("OffsetToDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	origin := date(2024, time.January, 1)
	for _, zoom := range ZoomLevels {
		ppd := BasePixelsPerDay * zoom
		for days := -40; days <= 400; days += 13 {
			d := origin.AddDate(0, 0, days)
			back := OffsetToDate(origin, DateToOffset(d, origin, ppd), ppd)
			if !back.Equal(d) {
				t.Fatalf("round trip at zoom %v: %v -> %v", zoom, d, back)
			}
		}
	}
}
