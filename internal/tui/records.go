package tui

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kreigan/powerdns-tui/internal/view"
)

// maxContentWidth caps record content length on the table; full content is
// still available in the edit dialog.
const maxContentWidth = 50

// recordsScreen shows the flattened records of one zone.
type recordsScreen struct {
	app     *App
	zone    zoneRef
	layout  *tview.Flex
	search  *tview.InputField
	table   *tview.Table
	loaded  []view.RecordRow
	visible []view.RecordRow
}

var recordHeaders = []string{"Name", "Type", "Content", "TTL", "Disabled"}

func newRecordsScreen(a *App, zone zoneRef) *recordsScreen {
	s := &recordsScreen{app: a, zone: zone}

	title := tview.NewTextView()
	title.SetText("Zone: " + zone.name).SetTextAlign(tview.AlignCenter)

	s.search = tview.NewInputField()
	s.search.SetLabel("Search records: ")
	s.search.SetChangedFunc(func(text string) {
		s.applyFilter(text)
	})
	s.search.SetDoneFunc(func(_ tcell.Key) {
		a.ui.SetFocus(s.table)
	})

	s.table = tview.NewTable()
	s.table.SetSelectable(true, false)
	s.table.SetFixed(1, 0)
	s.table.SetInputCapture(s.handleKey)

	help := tview.NewTextView()
	help.SetText("Esc: back | c: Create | e: Edit | d: Delete | r: Refresh | /: Search").
		SetTextAlign(tview.AlignCenter)

	s.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(s.search, 1, 0, false).
		AddItem(s.table, 0, 1, true).
		AddItem(help, 1, 0, false)

	return s
}

// load refetches the zone detail and rebuilds the flattened record rows.
func (s *recordsScreen) load() {
	ctx := context.Background()
	if err := s.zone.gw.EnsureConnected(ctx); err != nil {
		s.app.notifyError("Error loading records: %v", err)
		return
	}
	zone, err := s.zone.gw.GetZone(ctx, s.zone.id)
	if err != nil {
		s.app.notifyError("Error loading records: %v", err)
		return
	}

	s.loaded = view.FlattenRecords(zone)
	s.applyFilter(s.search.GetText())
	s.app.notify("Loaded %d records", len(s.loaded))
}

func (s *recordsScreen) applyFilter(term string) {
	s.visible = view.FilterRecords(s.loaded, term)
	s.render()
}

func (s *recordsScreen) render() {
	s.table.Clear()
	for col, h := range recordHeaders {
		cell := tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold)
		s.table.SetCell(0, col, cell)
	}

	for i, r := range s.visible {
		row := i + 1
		disabled := "No"
		if r.Disabled {
			disabled = "Yes"
		}
		s.table.SetCell(row, 0, tview.NewTableCell(r.Name))
		s.table.SetCell(row, 1, tview.NewTableCell(r.Type))
		s.table.SetCell(row, 2, tview.NewTableCell(truncate(r.Content)).SetExpansion(1))
		s.table.SetCell(row, 3, tview.NewTableCell(strconv.FormatUint(uint64(r.TTL), 10)))
		s.table.SetCell(row, 4, tview.NewTableCell(disabled))
	}

	if len(s.visible) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *recordsScreen) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyEscape {
		s.app.closeRecords()
		return nil
	}
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'r':
		s.load()
	case '/':
		s.app.ui.SetFocus(s.search)
	case 'c':
		s.app.showCreateRecord(s)
	case 'e':
		s.editSelected()
	case 'd':
		s.deleteSelected()
	default:
		return ev
	}
	return nil
}

// selected returns the record row under the cursor, if any.
func (s *recordsScreen) selected() (view.RecordRow, bool) {
	row, _ := s.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(s.visible) {
		return view.RecordRow{}, false
	}
	return s.visible[idx], true
}

func (s *recordsScreen) editSelected() {
	r, ok := s.selected()
	if !ok {
		s.app.notifyWarn("Please select a record to edit")
		return
	}
	s.app.showEditRecord(s, r)
}

func (s *recordsScreen) deleteSelected() {
	r, ok := s.selected()
	if !ok {
		s.app.notifyWarn("Please select a record to delete")
		return
	}

	s.app.confirm("Delete record "+r.Name+" ("+r.Type+")?", s.table, func() {
		if err := view.DeleteRecord(context.Background(), s.zone.gw, s.zone.id, r); err != nil {
			s.app.notifyError("Error deleting record: %v", err)
			return
		}
		s.app.notify("Record deleted successfully")
		s.load()
	})
}

func truncate(content string) string {
	if len(content) > maxContentWidth {
		return content[:maxContentWidth] + "..."
	}
	return content
}
