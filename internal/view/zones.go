// Package view builds the displayable zone and record collections and runs
// the mutation workflows behind the interactive screens.
package view

import (
	"context"
	"strconv"
	"strings"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

// notAvailable is rendered for optional zone fields the server didn't return.
const notAvailable = "N/A"

// ServerGateway is the per-server operation surface the views depend on.
type ServerGateway interface {
	Name() string
	FQDN() string
	Connected() bool
	Connect(ctx context.Context) error
	EnsureConnected(ctx context.Context) error
	ListZones(ctx context.Context) ([]powerdns.Zone, error)
	GetZone(ctx context.Context, zoneID string) (*powerdns.Zone, error)
	CreateZone(ctx context.Context, name, kind string, nameservers []string) error
	DeleteZone(ctx context.Context, zoneID string) error
	UpsertRRset(ctx context.Context, zoneID string, rrset powerdns.RRset) error
	DeleteRRset(ctx context.Context, zoneID, name, rtype string) error
}

// ZoneSummary is one row of the zone list, tagged with its origin server.
// Summaries are disposable view state, rebuilt in full on every load.
type ZoneSummary struct {
	Server         ServerGateway
	ID             string
	Name           string
	Kind           string
	Serial         string
	NotifiedSerial string
	RecordSets     int
}

// LoadWarning records a per-server failure during a zone load.
type LoadWarning struct {
	Server ServerGateway
	Err    error
}

// ZoneLoadResult holds the merged zone list and any per-server warnings.
type ZoneLoadResult struct {
	Zones    []ZoneSummary
	Warnings []LoadWarning
}

// LoadZones queries every gateway in configured order and merges the zone
// summaries. A failure on one server never aborts the load; it is recorded
// as a warning and the remaining gateways are still queried.
func LoadZones(ctx context.Context, gateways []ServerGateway) ZoneLoadResult {
	var result ZoneLoadResult

	for _, gw := range gateways {
		if err := gw.EnsureConnected(ctx); err != nil {
			result.Warnings = append(result.Warnings, LoadWarning{Server: gw, Err: err})
			continue
		}
		zones, err := gw.ListZones(ctx)
		if err != nil {
			result.Warnings = append(result.Warnings, LoadWarning{Server: gw, Err: err})
			continue
		}
		for _, z := range zones {
			result.Zones = append(result.Zones, summarize(gw, z))
		}
	}

	return result
}

func summarize(gw ServerGateway, z powerdns.Zone) ZoneSummary {
	id := z.ID
	if id == "" {
		id = z.Name
	}
	kind := z.Kind
	if kind == "" {
		kind = notAvailable
	}
	return ZoneSummary{
		Server:         gw,
		ID:             id,
		Name:           z.Name,
		Kind:           kind,
		Serial:         formatSerial(z.Serial),
		NotifiedSerial: formatSerial(z.NotifiedSerial),
		RecordSets:     len(z.RRsets),
	}
}

func formatSerial(v *int64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatInt(*v, 10)
}

// FilterZones returns the zones matching term, case-insensitively, against
// zone name, kind, server display name or server FQDN. An empty term matches
// everything. The input slice is never mutated.
func FilterZones(zones []ZoneSummary, term string) []ZoneSummary {
	if term == "" {
		return zones
	}
	needle := strings.ToLower(term)

	var matched []ZoneSummary
	for _, z := range zones {
		if strings.Contains(strings.ToLower(z.Name), needle) ||
			strings.Contains(strings.ToLower(z.Kind), needle) ||
			strings.Contains(strings.ToLower(z.Server.Name()), needle) ||
			strings.Contains(strings.ToLower(z.Server.FQDN()), needle) {
			matched = append(matched, z)
		}
	}
	return matched
}
