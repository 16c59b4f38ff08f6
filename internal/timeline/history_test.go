package timeline

import "testing"

func TestHistoryRecordDuringReplayIsSuppressed(t *testing.T) {
	var h History

	h.Record(snapshot{rows: []Row{{ID: "a"}}})
	if !h.CanUndo() {
		t.Fatal("record should push to the undo stack")
	}

	// A mutation triggered synchronously during a replay must not push a
	// new history entry or clear the redo stack.
	h.Undo(snapshot{rows: []Row{{ID: "b"}}}, func(s snapshot) {
		h.Record(snapshot{rows: []Row{{ID: "c"}}})
	})

	if h.CanUndo() {
		t.Error("the re-entrant record during replay must be suppressed")
	}
	if !h.CanRedo() {
		t.Error("redo stack should hold the pre-undo state")
	}
}

func TestHistoryUndoRedoSymmetry(t *testing.T) {
	var h History
	var live snapshot

	restore := func(s snapshot) { live = s }

	first := snapshot{rows: []Row{{ID: "v1"}}}
	second := snapshot{rows: []Row{{ID: "v2"}}}

	h.Record(first)
	live = second

	if !h.Undo(live, restore) {
		t.Fatal("Undo() should succeed")
	}
	if live.rows[0].ID != "v1" {
		t.Errorf("live = %s, want v1", live.rows[0].ID)
	}

	if !h.Redo(live, restore) {
		t.Fatal("Redo() should succeed")
	}
	if live.rows[0].ID != "v2" {
		t.Errorf("live = %s, want v2", live.rows[0].ID)
	}
}

func TestHistoryReset(t *testing.T) {
	var h History
	h.Record(snapshot{})
	h.Undo(snapshot{}, func(snapshot) {})

	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Error("reset must drop both stacks")
	}
}
