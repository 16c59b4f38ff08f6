package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"plotline/internal/timeline"
)

// --- YAML wire format ---

type rowDTO struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type eventDTO struct {
	ID    string `yaml:"id"`
	Row   string `yaml:"row"`
	Label string `yaml:"label"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Color string `yaml:"color"`
}

type templateDTO struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Rows        []rowDTO   `yaml:"rows"`
	Events      []eventDTO `yaml:"events"`
}

const dateLayout = "2006-01-02"

func fromDTO(id string, dto templateDTO) (Template, error) {
	t := Template{
		ID:          id,
		Name:        dto.Name,
		Description: dto.Description,
	}
	if t.Name == "" {
		return Template{}, fmt.Errorf("template %s: missing name", id)
	}

	for _, r := range dto.Rows {
		t.Rows = append(t.Rows, timeline.Row{ID: r.ID, Label: r.Label})
	}

	for _, e := range dto.Events {
		start, err := time.Parse(dateLayout, e.Start)
		if err != nil {
			return Template{}, fmt.Errorf("template %s: event %s: bad start date %q", id, e.ID, e.Start)
		}
		end, err := time.Parse(dateLayout, e.End)
		if err != nil {
			return Template{}, fmt.Errorf("template %s: event %s: bad end date %q", id, e.ID, e.End)
		}
		t.Events = append(t.Events, timeline.Event{
			ID:    e.ID,
			RowID: e.Row,
			Label: e.Label,
			Start: timeline.DateOnly(start),
			End:   timeline.DateOnly(end),
			Color: timeline.ParseColor(e.Color),
		})
	}

	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Load parses a single YAML template file. The template id is derived
// from the file name.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}

	var dto templateDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Template{}, fmt.Errorf("parse template %s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fromDTO(id, dto)
}

// LoadDir loads every *.yaml/*.yml file in dir, sorted by name. A
// missing directory yields no templates and no error; a malformed file
// fails the whole load so the user sees the problem instead of a
// silently shorter gallery.
func LoadDir(dir string) ([]Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	var templates []Template
	for _, path := range paths {
		t, err := Load(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}
