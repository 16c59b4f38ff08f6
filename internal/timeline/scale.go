package timeline

import (
	"math"
	"time"
)

// BasePixelsPerDay is the horizontal scale at 100% zoom.
const BasePixelsPerDay = 3.0

// MinEventWidth keeps zero-length events visible as a sliver.
const MinEventWidth = 2.0

// ZoomLevels is the fixed ordered set of zoom factors.
var ZoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0}

// DefaultZoomIndex is the index of the 100% level in ZoomLevels.
const DefaultZoomIndex = 3

// DateOnly strips the time-of-day component, normalizing to midnight UTC
// so day arithmetic is immune to DST and timezone drift.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed whole-day count from a to b, computed on
// date-only components.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DateToOffset converts a date to a horizontal pixel offset from origin.
func DateToOffset(date, origin time.Time, pixelsPerDay float64) float64 {
	return float64(DaysBetween(origin, date)) * pixelsPerDay
}

// OffsetToDate is the inverse mapping: origin plus the rounded day count
// the pixel offset covers. Degenerate inputs resolve to the origin date.
func OffsetToDate(origin time.Time, offset, pixelsPerDay float64) time.Time {
	if pixelsPerDay <= 0 || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return DateOnly(origin)
	}
	days := int(math.Round(offset / pixelsPerDay))
	return DateOnly(origin).AddDate(0, 0, days)
}
