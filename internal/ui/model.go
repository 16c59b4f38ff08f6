package ui

import (
	"errors"
	"fmt"
	"time"

	"plotline/internal/config"
	"plotline/internal/template"
	"plotline/internal/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ViewMode int

const (
	ViewGallery ViewMode = iota
	ViewEditor
	ViewHelp
	ViewEventForm
	ViewRowRename
	ViewConfirmDelete
)

// confirmTarget is what a pending delete confirmation points at.
type confirmTarget struct {
	isRow bool
	id    string
	label string
}

type Model struct {
	// Core components
	config  *config.Config
	editor  *timeline.Editor
	watcher *template.Watcher

	// View state
	mode ViewMode

	// Template gallery state
	templates    []template.Template
	galleryIndex int
	reloads      chan string

	// Editor view state
	rowCursor int
	scrollX   int
	drag      *timeline.DragSession

	// Form state
	form        *eventForm
	renameRowID string
	renameInput *renameField
	confirm     confirmTarget

	// UI state
	width      int
	height     int
	message    string
	messageSeq int
	loaded     bool // a template has been applied at least once

	// Styles
	styles Styles
}

type Styles struct {
	Normal   lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Grid     lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
	Events   map[timeline.Color]lipgloss.Style
}

func NewModel(cfg *config.Config) *Model {
	editor := timeline.NewEditor()
	editor.SetBasePixelsPerDay(cfg.BasePixelsPerDay)
	editor.SetDefaultEventDays(cfg.DefaultEventDays)

	m := &Model{
		config:  cfg,
		editor:  editor,
		mode:    ViewGallery,
		reloads: make(chan string, 1),
		styles:  NewStyles(cfg),
	}
	m.reloadTemplates()

	// Set up template directory watcher
	if cfg.AutoReloadTemplates {
		watcher, err := template.NewWatcher(cfg.TemplateDir, func(dir string) {
			select {
			case m.reloads <- dir:
			default:
			}
		})
		if err == nil {
			m.watcher = watcher
		}
	}

	return m
}

func NewStyles(cfg *config.Config) Styles {
	color := func(name, fallback string) lipgloss.Color {
		if spec, ok := cfg.Colors[name]; ok && spec != "" {
			return lipgloss.Color(spec)
		}
		return lipgloss.Color(fallback)
	}

	events := map[timeline.Color]lipgloss.Style{}
	for _, c := range timeline.Colors() {
		events[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(color(c.String(), "245"))
	}

	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(color("selected", "220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(color("today", "214")),
		Grid: lipgloss.NewStyle().
			Foreground(color("grid", "238")),
		Header: lipgloss.NewStyle().
			Foreground(color("header", "220")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Events: events,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.waitForReload(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case templatesReloadedMsg:
		m.reloadTemplates()
		if m.galleryIndex >= len(m.templates) {
			m.galleryIndex = len(m.templates) - 1
		}
		cmd := m.showMessage("Templates reloaded")
		return m, tea.Batch(cmd, m.waitForReload())

	case messageTimeoutMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewGallery:
		return m.viewGallery()
	case ViewEditor:
		return m.renderEditorView()
	case ViewHelp:
		return m.viewHelp()
	case ViewEventForm:
		return m.viewEventForm()
	case ViewRowRename:
		return m.viewRowRename()
	case ViewConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewGallery()
	}
}

// key returns the configured key for a named action.
func (m *Model) key(action string) string {
	return m.config.KeyBindings[action]
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry and modal modes consume the raw key stream.
	switch m.mode {
	case ViewEventForm:
		return m.handleFormKeys(msg)
	case ViewRowRename:
		return m.handleRenameKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmKeys(msg)
	case ViewHelp:
		m.mode = ViewEditor
		return m, nil
	}

	key := msg.String()

	if key == "ctrl+c" || (key == m.key("quit") && m.drag == nil) {
		m.Close()
		return m, tea.Quit
	}

	if key == m.key("help") {
		m.mode = ViewHelp
		return m, nil
	}

	switch m.mode {
	case ViewGallery:
		return m.handleGalleryKeys(msg)
	case ViewEditor:
		return m.handleEditorKeys(msg)
	}

	return m, nil
}

func (m *Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.galleryIndex < len(m.templates)-1 {
			m.galleryIndex++
		}

	case "k", "up":
		if m.galleryIndex > 0 {
			m.galleryIndex--
		}

	case "enter":
		return m.applyTemplate()

	case "esc", m.key("gallery"):
		// Return to the editor only once a document exists.
		if m.loaded {
			m.mode = ViewEditor
		}
	}

	return m, nil
}

// applyTemplate loads the highlighted template as a fresh document.
func (m *Model) applyTemplate() (tea.Model, tea.Cmd) {
	if len(m.templates) == 0 {
		return m, m.showMessage("No templates available")
	}

	tpl := m.templates[m.galleryIndex]
	m.editor.LoadDocument(tpl.Rows, tpl.Events)
	m.rowCursor = 0
	m.scrollX = 0
	m.drag = nil
	m.loaded = true
	m.mode = ViewEditor

	return m, m.showMessage(fmt.Sprintf("Loaded %q", tpl.Name))
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag != nil {
		return m.handleDragKeys(msg)
	}

	key := msg.String()

	switch key {
	case "l", "right":
		m.selectNextEvent(1)
		m.ensureSelectedVisible()

	case "h", "left":
		m.selectNextEvent(-1)
		m.ensureSelectedVisible()

	case "j", "down":
		if m.rowCursor < len(m.editor.Rows())-1 {
			m.rowCursor++
		}

	case "k", "up":
		if m.rowCursor > 0 {
			m.rowCursor--
		}

	case "L":
		m.scrollX += 10
		m.clampScroll()

	case "H":
		m.scrollX -= 10
		m.clampScroll()

	case "esc":
		m.editor.ClearSelection()

	case m.key("gallery"):
		m.mode = ViewGallery

	case m.key("zoom_in"):
		if m.editor.ZoomIn() {
			m.clampScroll()
			return m, m.showMessage(fmt.Sprintf("Zoom %d%%", m.editor.ZoomPercent()))
		}

	case m.key("zoom_out"):
		if m.editor.ZoomOut() {
			m.clampScroll()
			return m, m.showMessage(fmt.Sprintf("Zoom %d%%", m.editor.ZoomPercent()))
		}

	case m.key("undo"):
		if m.editor.Undo() {
			m.syncCursorAfterHistory()
			return m, m.showMessage("Undo")
		}
		return m, m.showMessage("Nothing to undo")

	case m.key("redo"):
		if m.editor.Redo() {
			m.syncCursorAfterHistory()
			return m, m.showMessage("Redo")
		}
		return m, m.showMessage("Nothing to redo")

	case m.key("add_row"):
		row := m.editor.AddRow()
		m.rowCursor = len(m.editor.Rows()) - 1
		return m, m.showMessage(fmt.Sprintf("Added %q", row.Label))

	case m.key("rename_row"):
		return m.openRowRename()

	case m.key("delete_row"):
		return m.requestRowDelete()

	case m.key("add_event"):
		return m.openAddForm()

	case m.key("edit_event"):
		return m.openEditForm()

	case m.key("delete_event"):
		return m.requestEventDelete()

	case m.key("grab"):
		return m.beginDrag(timeline.DragMove, timeline.HandleStart)

	case m.key("resize_start"):
		return m.beginDrag(timeline.DragResize, timeline.HandleStart)

	case m.key("resize_end"):
		return m.beginDrag(timeline.DragResize, timeline.HandleEnd)
	}

	return m, nil
}

// beginDrag starts a keyboard drag session on the selected event.
func (m *Model) beginDrag(kind timeline.DragKind, h timeline.Handle) (tea.Model, tea.Cmd) {
	id := m.editor.SelectedEventID()
	if id == "" {
		return m, m.showMessage("Select an event first")
	}

	var (
		session *timeline.DragSession
		ok      bool
	)
	if kind == timeline.DragMove {
		session, ok = m.editor.BeginMove(id)
	} else {
		session, ok = m.editor.BeginResize(id, h)
	}
	if !ok {
		return m, nil
	}

	m.drag = session
	return m, nil
}

func (m *Model) handleDragKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ppd := m.editor.PixelsPerDay()

	switch msg.String() {
	case "l", "right":
		m.drag.MoveBy(ppd)

	case "h", "left":
		m.drag.MoveBy(-ppd)

	case "L":
		m.drag.MoveBy(7 * ppd)

	case "H":
		m.drag.MoveBy(-7 * ppd)

	case "j", "down":
		if m.drag.Kind() == timeline.DragMove {
			m.retargetDragRow(1)
		}

	case "k", "up":
		if m.drag.Kind() == timeline.DragMove {
			m.retargetDragRow(-1)
		}

	case "enter":
		committed := m.editor.CommitDrag(m.drag)
		m.drag = nil
		m.ensureSelectedVisible()
		if committed {
			return m, m.showMessage("Committed")
		}
		return m, m.showMessage("No change")

	case "esc":
		m.drag = nil
		return m, m.showMessage("Cancelled")
	}

	return m, nil
}

// retargetDragRow moves the drag target one row up or down.
func (m *Model) retargetDragRow(dir int) {
	rows := m.editor.Rows()
	cur := -1
	for i, r := range rows {
		if r.ID == m.drag.TargetRowID() {
			cur = i
			break
		}
	}
	next := cur + dir
	if next < 0 || next >= len(rows) {
		return
	}
	m.drag.SetTargetRow(rows[next].ID)
}

// selectNextEvent cycles the selection through all events ordered by
// start date, wrapping around at either end.
func (m *Model) selectNextEvent(dir int) {
	events := m.sortedEvents()
	if len(events) == 0 {
		return
	}

	cur := -1
	for i, ev := range events {
		if ev.ID == m.editor.SelectedEventID() {
			cur = i
			break
		}
	}

	next := cur + dir
	if cur == -1 {
		next = 0
		if dir < 0 {
			next = len(events) - 1
		}
	} else if next < 0 {
		next = len(events) - 1
	} else if next >= len(events) {
		next = 0
	}

	m.editor.SelectEvent(events[next].ID)
	m.syncRowCursorToSelection()
}

func (m *Model) syncRowCursorToSelection() {
	id := m.editor.SelectedEventID()
	if id == "" {
		return
	}
	ev, ok := m.editor.EventByID(id)
	if !ok {
		return
	}
	for i, r := range m.editor.Rows() {
		if r.ID == ev.RowID {
			m.rowCursor = i
			return
		}
	}
}

// syncCursorAfterHistory keeps the row cursor in range after undo/redo
// changes the row list.
func (m *Model) syncCursorAfterHistory() {
	rows := m.editor.Rows()
	if m.rowCursor >= len(rows) {
		m.rowCursor = len(rows) - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
	m.drag = nil
}

func (m *Model) openAddForm() (tea.Model, tea.Cmd) {
	draft, err := m.editor.NewEventDraft()
	if err != nil {
		if errors.Is(err, timeline.ErrNoRows) {
			return m, m.showMessage("Add a row before adding events")
		}
		return m, m.showMessage(fmt.Sprintf("Error: %v", err))
	}

	// Prefer the row under the cursor over the draft's default.
	rows := m.editor.Rows()
	if m.rowCursor >= 0 && m.rowCursor < len(rows) {
		draft.RowID = rows[m.rowCursor].ID
	}

	m.form = newEventForm(draft)
	m.mode = ViewEventForm
	return m, nil
}

func (m *Model) openEditForm() (tea.Model, tea.Cmd) {
	id := m.editor.SelectedEventID()
	if id == "" {
		return m, m.showMessage("Select an event first")
	}
	draft, ok := m.editor.EditEventDraft(id)
	if !ok {
		return m, nil
	}
	m.form = newEventForm(draft)
	m.mode = ViewEventForm
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = ViewEditor
		return m, nil

	case "enter":
		ev, err := m.editor.SaveDraft(m.form.draft, m.form.submission())
		if err != nil {
			// Keep the form open with its values for correction.
			m.form.err = err
			return m, nil
		}
		m.form = nil
		m.mode = ViewEditor
		m.syncRowCursorToSelection()
		m.ensureSelectedVisible()
		return m, m.showMessage(fmt.Sprintf("Saved %q", ev.Label))
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m *Model) openRowRename() (tea.Model, tea.Cmd) {
	rows := m.editor.Rows()
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return m, nil
	}
	row := rows[m.rowCursor]
	m.renameRowID = row.ID
	m.renameInput = newRenameField(row.Label)
	m.mode = ViewRowRename
	return m, nil
}

func (m *Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renameInput = nil
		m.mode = ViewEditor
		return m, nil

	case "enter":
		renamed := m.editor.RenameRow(m.renameRowID, m.renameInput.value())
		m.renameInput = nil
		m.mode = ViewEditor
		if renamed {
			return m, m.showMessage("Row renamed")
		}
		return m, nil
	}

	cmd := m.renameInput.update(msg)
	return m, cmd
}

func (m *Model) requestEventDelete() (tea.Model, tea.Cmd) {
	id := m.editor.SelectedEventID()
	if id == "" {
		return m, m.showMessage("Select an event first")
	}

	if !m.config.ConfirmDelete {
		m.editor.DeleteSelected()
		return m, m.showMessage("Event deleted")
	}

	ev, _ := m.editor.EventByID(id)
	m.confirm = confirmTarget{id: id, label: ev.Label}
	m.mode = ViewConfirmDelete
	return m, nil
}

func (m *Model) requestRowDelete() (tea.Model, tea.Cmd) {
	rows := m.editor.Rows()
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return m, nil
	}
	row := rows[m.rowCursor]

	if !m.config.ConfirmDelete {
		m.editor.DeleteRow(row.ID)
		m.syncCursorAfterHistory()
		return m, m.showMessage(fmt.Sprintf("Deleted %q", row.Label))
	}

	m.confirm = confirmTarget{isRow: true, id: row.ID, label: row.Label}
	m.mode = ViewConfirmDelete
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		target := m.confirm
		m.confirm = confirmTarget{}
		m.mode = ViewEditor
		if target.isRow {
			m.editor.DeleteRow(target.id)
			m.syncCursorAfterHistory()
			return m, m.showMessage(fmt.Sprintf("Deleted %q", target.label))
		}
		m.editor.DeleteEvent(target.id)
		return m, m.showMessage("Event deleted")

	case "n", "N", "esc", "q":
		m.confirm = confirmTarget{}
		m.mode = ViewEditor
	}

	return m, nil
}

// reloadTemplates rebuilds the gallery from the built-ins plus whatever
// the template directory currently holds.
func (m *Model) reloadTemplates() {
	list := template.Builtins()
	loaded, err := template.LoadDir(m.config.TemplateDir)
	if err == nil {
		list = append(list, loaded...)
	}
	m.templates = list
	if m.galleryIndex >= len(m.templates) {
		m.galleryIndex = 0
	}
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.messageSeq++
	seq := m.messageSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return messageTimeoutMsg{seq: seq}
	})
}

func (m *Model) waitForReload() tea.Cmd {
	return func() tea.Msg {
		dir, ok := <-m.reloads
		if !ok {
			return nil
		}
		return templatesReloadedMsg{dir: dir}
	}
}

// Close releases the template watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// Message types
type messageTimeoutMsg struct{ seq int }
type templatesReloadedMsg struct{ dir string }
