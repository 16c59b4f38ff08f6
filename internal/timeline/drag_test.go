package timeline

import (
	"math"
	"testing"
)

func TestMovePreservesDuration(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")
	wantDur := orig.DurationDays()

	s, ok := e.BeginMove("event-1")
	if !ok {
		t.Fatal("BeginMove() should find event-1")
	}
	s.MoveBy(10 * e.PixelsPerDay())

	if !e.CommitDrag(s) {
		t.Fatal("CommitDrag() should mutate")
	}

	moved, _ := e.EventByID("event-1")
	if !moved.Start.Equal(orig.Start.AddDate(0, 0, 10)) {
		t.Errorf("start = %v, want %v", moved.Start, orig.Start.AddDate(0, 0, 10))
	}
	if moved.DurationDays() != wantDur {
		t.Errorf("duration = %d days, want %d", moved.DurationDays(), wantDur)
	}
}

func TestMoveClampsToTimelineStart(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, _ := e.BeginMove("event-1")
	s.MoveBy(-10000)
	e.CommitDrag(s)

	moved, _ := e.EventByID("event-1")
	if !moved.Start.Equal(e.Bounds().Start) {
		t.Errorf("start = %v, want clamp to %v", moved.Start, e.Bounds().Start)
	}
	if moved.DurationDays() != orig.DurationDays() {
		t.Errorf("duration = %d, want %d", moved.DurationDays(), orig.DurationDays())
	}
}

func TestMoveToAnotherRow(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginMove("event-1")
	s.MoveBy(e.PixelsPerDay())
	s.SetTargetRow("row-2")
	e.CommitDrag(s)

	moved, _ := e.EventByID("event-1")
	if moved.RowID != "row-2" {
		t.Errorf("row = %s, want row-2", moved.RowID)
	}
}

func TestMoveToUnknownRowKeepsOriginal(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginMove("event-1")
	s.MoveBy(e.PixelsPerDay())
	s.SetTargetRow("deleted-row")
	e.CommitDrag(s)

	moved, _ := e.EventByID("event-1")
	if moved.RowID != "row-1" {
		t.Errorf("row = %s, want original row-1", moved.RowID)
	}
}

func TestRowChangeAloneCommits(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginMove("event-1")
	s.SetTargetRow("row-2")
	if !e.CommitDrag(s) {
		t.Fatal("dropping on another row without horizontal motion should commit")
	}

	moved, _ := e.EventByID("event-1")
	if moved.RowID != "row-2" {
		t.Errorf("row = %s, want row-2", moved.RowID)
	}
}

func TestZeroDeltaCommitIsNoOp(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginMove("event-1")
	if e.CommitDrag(s) {
		t.Error("zero displacement should commit as a no-op")
	}
	if e.CanUndo() {
		t.Error("a no-op commit must not push a history entry")
	}
}

func TestNaNDeltaCommitIsNoOp(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginMove("event-1")
	s.MoveBy(math.NaN())
	if e.CommitDrag(s) {
		t.Error("a NaN delta is degenerate and must commit as a no-op")
	}
	if e.CanUndo() {
		t.Error("a degenerate commit must not push a history entry")
	}
}

func TestSubPixelDeltaRoundsAway(t *testing.T) {
	e := newTestEditor()

	// Less than half a day of displacement rounds back to the original
	// date, so the commit is a no-op.
	s, _ := e.BeginMove("event-1")
	s.MoveBy(e.PixelsPerDay() * 0.4)
	if e.CommitDrag(s) {
		t.Error("sub-half-day displacement should resolve to a no-op")
	}
}

func TestMoveIsOneHistoryEntry(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	// Many intermediate pointer moves, one commit.
	s, _ := e.BeginMove("event-1")
	for i := 0; i < 25; i++ {
		s.MoveBy(e.PixelsPerDay())
	}
	e.CommitDrag(s)

	if !e.Undo() {
		t.Fatal("Undo() should succeed")
	}
	if e.CanUndo() {
		t.Error("the whole gesture must be a single undo step")
	}
	back, _ := e.EventByID("event-1")
	if !back.Start.Equal(orig.Start) {
		t.Errorf("start = %v, want %v", back.Start, orig.Start)
	}
}

func TestResizeEndHandle(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, ok := e.BeginResize("event-1", HandleEnd)
	if !ok {
		t.Fatal("BeginResize() should find event-1")
	}
	s.MoveBy(5 * e.PixelsPerDay())
	e.CommitDrag(s)

	resized, _ := e.EventByID("event-1")
	if !resized.Start.Equal(orig.Start) {
		t.Errorf("start moved during end resize: %v", resized.Start)
	}
	if !resized.End.Equal(orig.End.AddDate(0, 0, 5)) {
		t.Errorf("end = %v, want %v", resized.End, orig.End.AddDate(0, 0, 5))
	}
}

func TestResizeEndPastStartSnapsToMinimum(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, _ := e.BeginResize("event-1", HandleEnd)
	s.MoveBy(-10000)
	e.CommitDrag(s)

	resized, _ := e.EventByID("event-1")
	if !resized.End.After(resized.Start) {
		t.Fatalf("end %v must stay strictly after start %v", resized.End, resized.Start)
	}
	if !resized.End.Equal(orig.Start.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want start + minimum duration", resized.End)
	}
}

func TestResizeStartHandle(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, _ := e.BeginResize("event-1", HandleStart)
	s.MoveBy(3 * e.PixelsPerDay())
	e.CommitDrag(s)

	resized, _ := e.EventByID("event-1")
	if !resized.Start.Equal(orig.Start.AddDate(0, 0, 3)) {
		t.Errorf("start = %v, want %v", resized.Start, orig.Start.AddDate(0, 0, 3))
	}
	if !resized.End.Equal(orig.End) {
		t.Errorf("end moved during start resize: %v", resized.End)
	}
}

func TestResizeStartClampsToTimelineStart(t *testing.T) {
	e := newTestEditor()

	s, _ := e.BeginResize("event-1", HandleStart)
	s.MoveBy(-10000)
	e.CommitDrag(s)

	resized, _ := e.EventByID("event-1")
	if !resized.Start.Equal(e.Bounds().Start) {
		t.Errorf("start = %v, want clamp to %v", resized.Start, e.Bounds().Start)
	}
}

func TestResizeStartPastEndPushesEnd(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, _ := e.BeginResize("event-1", HandleStart)
	s.MoveBy(float64(orig.DurationDays()+10) * e.PixelsPerDay())
	e.CommitDrag(s)

	resized, _ := e.EventByID("event-1")
	wantStart := orig.Start.AddDate(0, 0, orig.DurationDays()+10)
	if !resized.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", resized.Start, wantStart)
	}
	if !resized.End.Equal(resized.Start.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want start + minimum duration", resized.End)
	}
	if !resized.End.After(resized.Start) {
		t.Error("end must stay strictly after start")
	}
}

func TestPreviewDragDoesNotMutate(t *testing.T) {
	e := newTestEditor()
	orig, _ := e.EventByID("event-1")

	s, _ := e.BeginMove("event-1")
	s.MoveBy(20 * e.PixelsPerDay())

	start, end := e.PreviewDrag(s)
	if !start.Equal(orig.Start.AddDate(0, 0, 20)) {
		t.Errorf("preview start = %v, want %v", start, orig.Start.AddDate(0, 0, 20))
	}
	if !end.Equal(orig.End.AddDate(0, 0, 20)) {
		t.Errorf("preview end = %v, want %v", end, orig.End.AddDate(0, 0, 20))
	}

	live, _ := e.EventByID("event-1")
	if !live.Start.Equal(orig.Start) || !live.End.Equal(orig.End) {
		t.Error("preview must not touch the store")
	}
	if e.CanUndo() {
		t.Error("preview must not push history")
	}
}

func TestClampInvariantAfterManyGestures(t *testing.T) {
	e := newTestEditor()
	deltas := []float64{-500, 40, -90000, 12.5, -3, 777}

	for i, d := range deltas {
		var s *DragSession
		switch i % 3 {
		case 0:
			s, _ = e.BeginMove("event-1")
		case 1:
			s, _ = e.BeginResize("event-1", HandleStart)
		case 2:
			s, _ = e.BeginResize("event-1", HandleEnd)
		}
		s.MoveBy(d)
		e.CommitDrag(s)

		ev, _ := e.EventByID("event-1")
		if ev.Start.Before(e.Bounds().Start) {
			t.Fatalf("after gesture %d: start %v precedes timeline start", i, ev.Start)
		}
		if !ev.End.After(ev.Start) {
			t.Fatalf("after gesture %d: end %v not strictly after start %v", i, ev.End, ev.Start)
		}
	}
}

func TestBeginDragUnknownEvent(t *testing.T) {
	e := newTestEditor()

	if _, ok := e.BeginMove("ghost"); ok {
		t.Error("BeginMove() on unknown id should fail")
	}
	if _, ok := e.BeginResize("ghost", HandleEnd); ok {
		t.Error("BeginResize() on unknown id should fail")
	}
	if e.CommitDrag(nil) {
		t.Error("CommitDrag(nil) should be a no-op")
	}
}
