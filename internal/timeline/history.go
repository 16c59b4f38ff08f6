package timeline

// snapshot is an immutable point-in-time copy of the row/event state.
type snapshot struct {
	rows   []Row
	events []Event
}

type historyState int

const (
	historyIdle historyState = iota
	historyReplaying
)

// History is a linear, snapshot-based undo/redo mechanism. While a
// replay is in progress it is in the replaying state and Record calls
// are suppressed, so a restore cannot corrupt its own stacks.
type History struct {
	undo  []snapshot
	redo  []snapshot
	state historyState
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Record pushes the current state onto the undo stack and clears the
// redo stack. It is a no-op during a replay.
func (h *History) Record(current snapshot) {
	if h.state == historyReplaying {
		return
	}
	h.undo = append(h.undo, current)
	h.redo = nil
}

// Undo pops the most recent snapshot, pushes the current state onto the
// redo stack, and restores the popped snapshot via the callback. The
// callback runs in the replaying state.
func (h *History) Undo(current snapshot, restore func(snapshot)) bool {
	if len(h.undo) == 0 {
		return false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)

	h.state = historyReplaying
	restore(top)
	h.state = historyIdle
	return true
}

// Redo is the symmetric inverse of Undo using the redo stack.
func (h *History) Redo(current snapshot, restore func(snapshot)) bool {
	if len(h.redo) == 0 {
		return false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)

	h.state = historyReplaying
	restore(top)
	h.state = historyIdle
	return true
}

// Reset drops both stacks. A freshly loaded document has no history.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.state = historyIdle
}
