package tui

import (
	"context"
	"fmt"

	"github.com/rivo/tview"
)

// Page names used on the root Pages container.
const (
	pageZones   = "zones"
	pageRecords = "records"
	pageModal   = "modal"
	pageConfirm = "confirm"
)

// App is the interactive application. One blocking remote call runs at a
// time; every action is issued from the foreground event loop.
type App struct {
	session *Session
	ui      *tview.Application
	pages   *tview.Pages
	status  *tview.TextView
	zones   *zonesScreen
	records *recordsScreen
}

// New builds the application for the given session.
func New(session *Session) *App {
	a := &App{
		session: session,
		ui:      tview.NewApplication(),
		pages:   tview.NewPages(),
	}

	a.status = tview.NewTextView()
	a.status.SetDynamicColors(true)

	a.zones = newZonesScreen(a)
	a.pages.AddPage(pageZones, a.zones.layout, true, true)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.ui.SetRoot(root, true)
	return a
}

// Run connects the configured gateways, loads the initial zone list and
// enters the event loop. It returns when the user quits.
func (a *App) Run() error {
	a.connectAll()
	a.zones.load()
	a.ui.SetFocus(a.zones.table)
	return a.ui.Run()
}

// connectAll attempts one eager connect per gateway. Failures are reported
// and the gateway stays in the session; a later refresh retries it.
func (a *App) connectAll() {
	ctx := context.Background()
	connected := 0
	for _, gw := range a.session.Gateways {
		if err := gw.EnsureConnected(ctx); err != nil {
			a.session.Log.Error("%v", err)
			a.notifyError("Failed to connect to %s: %v", gw.Name(), err)
			continue
		}
		connected++
	}
	if connected == 0 {
		// Degraded but alive: the user sees the error and may fix the
		// remote side, then refresh.
		a.notifyError("No servers connected. Please check your configuration.")
	}
}

// notify shows a transient informational message on the status line.
func (a *App) notify(format string, args ...interface{}) {
	a.status.SetText(fmt.Sprintf("[green]"+format+"[-]", args...))
}

// notifyWarn shows a transient warning on the status line.
func (a *App) notifyWarn(format string, args ...interface{}) {
	a.status.SetText(fmt.Sprintf("[yellow]"+format+"[-]", args...))
}

// notifyError shows a transient error on the status line.
func (a *App) notifyError(format string, args ...interface{}) {
	a.session.Log.Error(format, args...)
	a.status.SetText(fmt.Sprintf("[red]"+format+"[-]", args...))
}

// showModal centers p on top of the current screen.
func (a *App) showModal(p tview.Primitive, width, height int) {
	wrapper := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
	a.pages.AddPage(pageModal, wrapper, true, true)
	a.ui.SetFocus(p)
}

// closeModal removes the modal and returns focus to p.
func (a *App) closeModal(focus tview.Primitive) {
	a.pages.RemovePage(pageModal)
	a.ui.SetFocus(focus)
}

// confirm shows a yes/no dialog and invokes onYes when confirmed. Focus
// returns to the given primitive either way.
func (a *App) confirm(message string, focus tview.Primitive, onYes func()) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			a.pages.RemovePage(pageConfirm)
			a.ui.SetFocus(focus)
			if label == "Yes" {
				onYes()
			}
		})
	a.pages.AddPage(pageConfirm, modal, true, true)
	a.ui.SetFocus(modal)
}

// openRecords drills down into a zone's record list.
func (a *App) openRecords(z zoneRef) {
	a.records = newRecordsScreen(a, z)
	a.pages.AddPage(pageRecords, a.records.layout, true, true)
	a.records.load()
	a.ui.SetFocus(a.records.table)
}

// closeRecords returns to the zone list and refreshes it.
func (a *App) closeRecords() {
	a.pages.RemovePage(pageRecords)
	a.records = nil
	a.zones.load()
	a.ui.SetFocus(a.zones.table)
}
