package template

import (
	"testing"
	"time"

	"plotline/internal/timeline"
)

func TestBuiltinsAreValid(t *testing.T) {
	builtins := Builtins()
	if len(builtins) != 3 {
		t.Fatalf("builtins = %d, want 3", len(builtins))
	}

	for _, tpl := range builtins {
		if err := tpl.Validate(); err != nil {
			t.Errorf("builtin %s invalid: %v", tpl.ID, err)
		}
	}

	if builtins[0].Name != "Blank Canvas" || len(builtins[0].Rows) != 0 || len(builtins[0].Events) != 0 {
		t.Errorf("first builtin should be the empty canvas, got %+v", builtins[0])
	}
}

func TestValidate(t *testing.T) {
	base := func() Template {
		return Template{
			ID:   "t",
			Name: "T",
			Rows: []timeline.Row{{ID: "r1", Label: "Row"}},
			Events: []timeline.Event{
				{ID: "e1", RowID: "r1", Label: "E",
					Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Template)
		wantErr bool
	}{
		{"Valid template", func(t *Template) {}, false},
		{"Duplicate row id", func(t *Template) {
			t.Rows = append(t.Rows, timeline.Row{ID: "r1"})
		}, true},
		{"Duplicate event id", func(t *Template) {
			t.Events = append(t.Events, t.Events[0])
		}, true},
		{"Dangling row reference", func(t *Template) {
			t.Events[0].RowID = "ghost"
		}, true},
		{"Inverted date range", func(t *Template) {
			t.Events[0].End = t.Events[0].Start.AddDate(0, 0, -1)
		}, true},
		{"Empty row id", func(t *Template) {
			t.Rows[0].ID = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := base()
			tt.mutate(&tpl)
			err := tpl.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
