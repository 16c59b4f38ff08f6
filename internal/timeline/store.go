package timeline

// store holds the live rows, events, and selection. Its fields stay
// unexported so every mutation is routed through the Editor, which
// records history before applying changes.
type store struct {
	rows       []Row
	events     []Event
	selectedID string
}

func (s *store) rowByID(id string) (Row, bool) {
	for _, r := range s.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

func (s *store) eventByID(id string) (Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (s *store) addRow(r Row) {
	s.rows = append(s.rows, r)
}

func (s *store) renameRow(id, label string) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Label = label
			return
		}
	}
}

// deleteRow removes the row and every event referencing it in one
// combined mutation, so no event is ever left dangling.
func (s *store) deleteRow(id string) {
	rows := s.rows[:0]
	for _, r := range s.rows {
		if r.ID != id {
			rows = append(rows, r)
		}
	}
	s.rows = rows

	events := s.events[:0]
	for _, e := range s.events {
		if e.RowID != id {
			events = append(events, e)
		} else if e.ID == s.selectedID {
			s.selectedID = ""
		}
	}
	s.events = events
}

func (s *store) addEvent(e Event) {
	s.events = append(s.events, e)
}

// updateEvent replaces the stored event with the same id.
func (s *store) updateEvent(e Event) {
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return
		}
	}
}

func (s *store) deleteEvent(id string) {
	events := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			events = append(events, e)
		}
	}
	s.events = events
	if s.selectedID == id {
		s.selectedID = ""
	}
}
