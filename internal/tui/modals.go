package tui

import (
	"context"
	"strconv"

	"github.com/rivo/tview"

	"github.com/kreigan/powerdns-tui/internal/view"
)

// Form field labels, used both when building and when reading the forms.
const (
	labelServer      = "Server"
	labelZoneName    = "Zone name (FQDN)"
	labelKind        = "Kind"
	labelNameservers = "Nameservers (comma-separated)"
	labelRecordName  = "Record name"
	labelRecordType  = "Type"
	labelContent     = "Content"
	labelTTL         = "TTL (seconds)"
)

// showCreateZone opens the zone creation dialog. The server selector only
// appears when more than one gateway is configured.
func (a *App) showCreateZone() {
	form := tview.NewForm()

	multiServer := len(a.session.Gateways) > 1
	if multiServer {
		options := make([]string, len(a.session.Gateways))
		for i, gw := range a.session.Gateways {
			options[i] = gw.Name() + " (" + gw.FQDN() + ")"
		}
		form.AddDropDown(labelServer, options, 0, nil)
	}

	form.AddInputField(labelZoneName, "", 40, nil, nil)
	form.AddDropDown(labelKind, view.ZoneKinds, 0, nil)
	form.AddInputField(labelNameservers, "", 40, nil, nil)

	cancel := func() { a.closeModal(a.zones.table) }

	form.AddButton("Create", func() {
		input := view.ZoneForm{
			Name:        fieldText(form, labelZoneName),
			Kind:        dropDownValue(form, labelKind),
			Nameservers: fieldText(form, labelNameservers),
		}
		payload, err := input.Validate()
		if err != nil {
			// Validation failure keeps the form open.
			a.notifyError("%v", err)
			return
		}

		gw := a.session.Gateways[0]
		if multiServer {
			idx, _ := form.GetFormItemByLabel(labelServer).(*tview.DropDown).GetCurrentOption()
			gw = a.session.Gateways[idx]
		}

		a.closeModal(a.zones.table)
		if err := view.CreateZone(context.Background(), gw, payload); err != nil {
			a.notifyError("Error creating zone: %v", err)
			return
		}
		a.notify("Zone %s created successfully on %s", payload.Name, gw.Name())
		a.zones.load()
	})
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)
	form.SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true)
	form.SetTitle(" Create New Zone ")

	height := 11
	if multiServer {
		height += 2
	}
	a.showModal(form, 60, height)
}

// showCreateRecord opens the record creation dialog for the given zone.
func (a *App) showCreateRecord(s *recordsScreen) {
	form := tview.NewForm()
	form.AddInputField(labelRecordName, "", 40, nil, nil)
	form.AddDropDown(labelRecordType, view.RecordTypes, 0, nil)
	form.AddInputField(labelContent, "", 40, nil, nil)
	form.AddInputField(labelTTL, "3600", 10, nil, nil)

	cancel := func() { a.closeModal(s.table) }

	form.AddButton("Create", func() {
		input := view.RecordForm{
			Name:    fieldText(form, labelRecordName),
			Type:    dropDownValue(form, labelRecordType),
			Content: fieldText(form, labelContent),
			TTL:     fieldText(form, labelTTL),
		}
		payload, err := input.Validate()
		if err != nil {
			a.notifyError("%v", err)
			return
		}

		a.closeModal(s.table)
		if err := view.CreateRecord(context.Background(), s.zone.gw, s.zone.id, s.zone.name, payload); err != nil {
			a.notifyError("Error creating record: %v", err)
			return
		}
		a.notify("Record created successfully")
		s.load()
	})
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)
	form.SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true)
	form.SetTitle(" Create New Record in " + s.zone.name + " ")

	a.showModal(form, 60, 13)
}

// showEditRecord opens the edit dialog for one record row. Name and type
// are fixed; only content and TTL can change.
func (a *App) showEditRecord(s *recordsScreen, row view.RecordRow) {
	form := tview.NewForm()
	form.AddInputField(labelContent, row.Content, 40, nil, nil)
	form.AddInputField(labelTTL, strconv.FormatUint(uint64(row.TTL), 10), 10, nil, nil)

	cancel := func() { a.closeModal(s.table) }

	form.AddButton("Save", func() {
		input := view.RecordEditForm{
			Content: fieldText(form, labelContent),
			TTL:     fieldText(form, labelTTL),
		}
		payload, err := input.Validate()
		if err != nil {
			a.notifyError("%v", err)
			return
		}

		a.closeModal(s.table)
		if err := view.EditRecord(context.Background(), s.zone.gw, s.zone.id, row, payload); err != nil {
			a.notifyError("Error updating record: %v", err)
			return
		}
		a.notify("Record updated successfully")
		s.load()
	})
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)
	form.SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true)
	form.SetTitle(" Edit " + row.Name + " (" + row.Type + ") ")

	a.showModal(form, 60, 9)
}

func fieldText(form *tview.Form, label string) string {
	return form.GetFormItemByLabel(label).(*tview.InputField).GetText()
}

func dropDownValue(form *tview.Form, label string) string {
	_, value := form.GetFormItemByLabel(label).(*tview.DropDown).GetCurrentOption()
	return value
}
