package tui

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kreigan/powerdns-tui/internal/view"
)

// zoneRef identifies one zone on one server for the drill-down screen.
type zoneRef struct {
	gw   view.ServerGateway
	id   string
	name string
}

// zonesScreen is the main screen: all zones from all configured servers.
type zonesScreen struct {
	app     *App
	layout  *tview.Flex
	search  *tview.InputField
	table   *tview.Table
	loaded  []view.ZoneSummary
	visible []view.ZoneSummary
}

var zoneHeaders = []string{"Server", "FQDN", "Zone", "Kind", "Serial", "Records", "Notified Serial"}

func newZonesScreen(a *App) *zonesScreen {
	s := &zonesScreen{app: a}

	title := tview.NewTextView()
	title.SetText("PowerDNS Zone Manager").SetTextAlign(tview.AlignCenter)

	s.search = tview.NewInputField()
	s.search.SetLabel("Search zones: ")
	s.search.SetChangedFunc(func(text string) {
		s.applyFilter(text)
	})
	s.search.SetDoneFunc(func(_ tcell.Key) {
		a.ui.SetFocus(s.table)
	})

	s.table = tview.NewTable()
	s.table.SetSelectable(true, false)
	s.table.SetFixed(1, 0)
	s.table.SetSelectedFunc(func(row, _ int) {
		s.enterZone(row)
	})
	s.table.SetInputCapture(s.handleKey)

	help := tview.NewTextView()
	help.SetText("Enter: view records | c: Create | d: Delete | r: Refresh | /: Search | q: Quit").
		SetTextAlign(tview.AlignCenter)

	s.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(s.search, 1, 0, false).
		AddItem(s.table, 0, 1, true).
		AddItem(help, 1, 0, false)

	return s
}

// load rebuilds the zone collection from every gateway and re-renders.
func (s *zonesScreen) load() {
	result := view.LoadZones(context.Background(), s.app.session.Gateways)
	s.loaded = result.Zones

	for _, w := range result.Warnings {
		s.app.notifyError("Error loading zones from %s: %v", w.Server.Name(), w.Err)
	}

	s.applyFilter(s.search.GetText())
	if len(result.Warnings) == 0 {
		s.app.notify("Loaded %d zones from %d server(s)", len(s.loaded), len(s.app.session.Gateways))
	}
}

func (s *zonesScreen) applyFilter(term string) {
	s.visible = view.FilterZones(s.loaded, term)
	s.render()
}

func (s *zonesScreen) render() {
	s.table.Clear()
	for col, h := range zoneHeaders {
		cell := tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold)
		s.table.SetCell(0, col, cell)
	}

	for i, z := range s.visible {
		row := i + 1
		s.table.SetCell(row, 0, tview.NewTableCell(z.Server.Name()))
		s.table.SetCell(row, 1, tview.NewTableCell(z.Server.FQDN()))
		s.table.SetCell(row, 2, tview.NewTableCell(z.Name).SetExpansion(1))
		s.table.SetCell(row, 3, tview.NewTableCell(z.Kind))
		s.table.SetCell(row, 4, tview.NewTableCell(z.Serial))
		s.table.SetCell(row, 5, tview.NewTableCell(strconv.Itoa(z.RecordSets)))
		s.table.SetCell(row, 6, tview.NewTableCell(z.NotifiedSerial))
	}

	if len(s.visible) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *zonesScreen) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'q':
		s.app.ui.Stop()
	case 'r':
		s.load()
	case '/':
		s.app.ui.SetFocus(s.search)
	case 'c':
		s.app.showCreateZone()
	case 'd':
		s.deleteSelected()
	default:
		return ev
	}
	return nil
}

// selected returns the zone under the cursor, if any.
func (s *zonesScreen) selected() (view.ZoneSummary, bool) {
	row, _ := s.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(s.visible) {
		return view.ZoneSummary{}, false
	}
	return s.visible[idx], true
}

func (s *zonesScreen) enterZone(row int) {
	idx := row - 1
	if idx < 0 || idx >= len(s.visible) {
		return
	}
	z := s.visible[idx]
	s.app.openRecords(zoneRef{gw: z.Server, id: z.ID, name: z.Name})
}

func (s *zonesScreen) deleteSelected() {
	z, ok := s.selected()
	if !ok {
		s.app.notifyWarn("Please select a zone to delete")
		return
	}

	s.app.confirm("Delete zone "+z.Name+"?", s.table, func() {
		if err := view.DeleteZone(context.Background(), z.Server, z.ID); err != nil {
			s.app.notifyError("Error deleting zone: %v", err)
			return
		}
		s.app.notify("Zone %s deleted successfully", z.Name)
		s.load()
	})
}
