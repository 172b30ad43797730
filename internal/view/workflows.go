package view

import (
	"context"
	"strings"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

// CreateZone validates nothing further (the payload is already validated)
// and submits the zone creation to the gateway.
func CreateZone(ctx context.Context, gw ServerGateway, payload ZonePayload) error {
	if err := gw.EnsureConnected(ctx); err != nil {
		return err
	}
	return gw.CreateZone(ctx, payload.Name, payload.Kind, payload.Nameservers)
}

// DeleteZone removes the zone. The caller is responsible for confirming
// the action with the user first.
func DeleteZone(ctx context.Context, gw ServerGateway, zoneID string) error {
	if err := gw.EnsureConnected(ctx); err != nil {
		return err
	}
	return gw.DeleteZone(ctx, zoneID)
}

// CreateRecord submits a single-record record-set for upsert. The record
// name is qualified with the zone name; an empty name addresses the zone
// apex itself.
func CreateRecord(ctx context.Context, gw ServerGateway, zoneID, zoneName string, payload RecordPayload) error {
	if err := gw.EnsureConnected(ctx); err != nil {
		return err
	}

	rrset := powerdns.RRset{
		Name:    BuildRecordFQDN(payload.Name, zoneName),
		Type:    payload.Type,
		TTL:     payload.TTL,
		Records: []powerdns.Record{{Content: payload.Content, Disabled: false}},
	}
	return gw.UpsertRRset(ctx, zoneID, rrset)
}

// EditRecord resubmits the row's record-set with the edited record's content
// replaced and every sibling record preserved. The row's disabled flag and
// the siblings' contents survive the edit.
func EditRecord(ctx context.Context, gw ServerGateway, zoneID string, row RecordRow, payload RecordEditPayload) error {
	if err := gw.EnsureConnected(ctx); err != nil {
		return err
	}

	records := make([]powerdns.Record, len(row.RRset.Records))
	copy(records, row.RRset.Records)
	if row.Index >= 0 && row.Index < len(records) {
		records[row.Index] = powerdns.Record{
			Content:  payload.Content,
			Disabled: row.Disabled,
		}
	} else {
		// Stale row; fall back to a single-record replacement.
		records = []powerdns.Record{{Content: payload.Content, Disabled: row.Disabled}}
	}

	rrset := powerdns.RRset{
		Name:    row.RRset.Name,
		Type:    row.RRset.Type,
		TTL:     payload.TTL,
		Records: records,
	}
	return gw.UpsertRRset(ctx, zoneID, rrset)
}

// DeleteRecord removes the entire record-set the row belongs to. PowerDNS
// deletes per name+type; co-located records go with it.
func DeleteRecord(ctx context.Context, gw ServerGateway, zoneID string, row RecordRow) error {
	if err := gw.EnsureConnected(ctx); err != nil {
		return err
	}
	return gw.DeleteRRset(ctx, zoneID, row.RRset.Name, row.RRset.Type)
}

// BuildRecordFQDN qualifies a record name with its zone name, guaranteeing
// exactly one trailing dot. An empty name yields the zone name itself.
func BuildRecordFQDN(name, zoneName string) string {
	fqdn := zoneName
	if name != "" {
		fqdn = name + "." + zoneName
	}
	if !strings.HasSuffix(fqdn, ".") {
		fqdn += "."
	}
	return fqdn
}
