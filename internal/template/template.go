// Package template provides the document templates the gallery offers:
// a built-in set plus YAML files loaded from a watched directory.
package template

import (
	"fmt"
	"time"

	"plotline/internal/timeline"
)

// Template is a named starting document for the editor.
type Template struct {
	ID          string
	Name        string
	Description string
	Rows        []timeline.Row
	Events      []timeline.Event
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Builtins returns the templates that ship with the application.
func Builtins() []Template {
	return []Template{
		{
			ID:          "tpl-blank",
			Name:        "Blank Canvas",
			Description: "Start with an empty timeline.",
		},
		{
			ID:          "tpl-project",
			Name:        "Project Plan",
			Description: "Basic structure for a project timeline.",
			Rows: []timeline.Row{
				{ID: "proj-r1", Label: "Planning"},
				{ID: "proj-r2", Label: "Development"},
				{ID: "proj-r3", Label: "Testing"},
				{ID: "proj-r4", Label: "Deployment"},
			},
			Events: []timeline.Event{
				{ID: "proj-e1", RowID: "proj-r1", Label: "Initial Meeting", Start: d(2024, time.January, 5), End: d(2024, time.January, 7), Color: timeline.ColorBlue},
				{ID: "proj-e2", RowID: "proj-r2", Label: "Core Feature Dev", Start: d(2024, time.January, 10), End: d(2024, time.February, 15), Color: timeline.ColorGreen},
				{ID: "proj-e3", RowID: "proj-r3", Label: "QA Cycle 1", Start: d(2024, time.February, 16), End: d(2024, time.February, 28), Color: timeline.ColorRed},
				{ID: "proj-e4", RowID: "proj-r4", Label: "Production Rollout", Start: d(2024, time.March, 1), End: d(2024, time.March, 5), Color: timeline.ColorDefault},
			},
		},
		{
			ID:          "tpl-marketing",
			Name:        "Marketing Campaign",
			Description: "Timeline for launching a marketing campaign.",
			Rows: []timeline.Row{
				{ID: "mkt-r1", Label: "Strategy"},
				{ID: "mkt-r2", Label: "Content Creation"},
				{ID: "mkt-r3", Label: "Promotion"},
				{ID: "mkt-r4", Label: "Analysis"},
			},
			Events: []timeline.Event{
				{ID: "mkt-e1", RowID: "mkt-r1", Label: "Define Goals", Start: d(2024, time.March, 1), End: d(2024, time.March, 7), Color: timeline.ColorBlue},
				{ID: "mkt-e2", RowID: "mkt-r2", Label: "Blog Posts", Start: d(2024, time.March, 8), End: d(2024, time.March, 20), Color: timeline.ColorGreen},
				{ID: "mkt-e3", RowID: "mkt-r2", Label: "Social Media Assets", Start: d(2024, time.March, 15), End: d(2024, time.March, 28), Color: timeline.ColorGreen},
				{ID: "mkt-e4", RowID: "mkt-r3", Label: "Launch Ads", Start: d(2024, time.April, 1), End: d(2024, time.April, 30), Color: timeline.ColorRed},
				{ID: "mkt-e5", RowID: "mkt-r4", Label: "Report Results", Start: d(2024, time.May, 1), End: d(2024, time.May, 7), Color: timeline.ColorDefault},
			},
		},
	}
}

// Validate checks the internal consistency of a template: unique row and
// event ids, every event referencing a declared row, and no inverted
// date ranges.
func (t Template) Validate() error {
	rowIDs := make(map[string]bool, len(t.Rows))
	for _, r := range t.Rows {
		if r.ID == "" {
			return fmt.Errorf("template %s: row with empty id", t.ID)
		}
		if rowIDs[r.ID] {
			return fmt.Errorf("template %s: duplicate row id %s", t.ID, r.ID)
		}
		rowIDs[r.ID] = true
	}

	eventIDs := make(map[string]bool, len(t.Events))
	for _, e := range t.Events {
		if e.ID == "" {
			return fmt.Errorf("template %s: event with empty id", t.ID)
		}
		if eventIDs[e.ID] {
			return fmt.Errorf("template %s: duplicate event id %s", t.ID, e.ID)
		}
		eventIDs[e.ID] = true
		if !rowIDs[e.RowID] {
			return fmt.Errorf("template %s: event %s references unknown row %s", t.ID, e.ID, e.RowID)
		}
		if e.End.Before(e.Start) {
			return fmt.Errorf("template %s: event %s ends before it starts", t.ID, e.ID)
		}
	}
	return nil
}
