// Package gateway wraps one connection profile into a connected PowerDNS server target.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kreigan/powerdns-tui/internal/config"
	"github.com/kreigan/powerdns-tui/internal/logger"
	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

const apiPathSuffix = "/api/v1"

// ErrNotConnected is returned when an operation is attempted before a
// successful EnsureConnected.
var ErrNotConnected = errors.New("gateway is not connected")

// Gateway performs operations against a single remote PowerDNS server.
// Connection state is mutated only by the single foreground flow; callers
// must invoke EnsureConnected before any operation.
type Gateway struct {
	profile   config.Profile
	fqdn      string
	log       *logger.Logger
	client    *powerdns.Client
	serverID  string
	connected bool
}

// New creates a gateway for the given profile. No connection is made yet.
func New(profile config.Profile, log *logger.Logger) *Gateway {
	return &Gateway{
		profile: profile,
		fqdn:    deriveFQDN(profile.URL),
		log:     log,
	}
}

// Name returns the profile's display name.
func (g *Gateway) Name() string {
	return g.profile.Name
}

// FQDN returns the host extracted from the profile URL, for display only.
func (g *Gateway) FQDN() string {
	return g.fqdn
}

// Connected reports whether a connection attempt has succeeded.
func (g *Gateway) Connected() bool {
	return g.connected
}

// Connect opens a session against the remote API and picks the first
// controlled server instance as the active target.
func (g *Gateway) Connect(ctx context.Context) error {
	apiURL := normalizeAPIURL(g.profile.URL)
	g.log.Debug("Connecting to %s (%s)", g.profile.Name, apiURL)
	g.log.Debug("API key: %s", logger.MaskSecret(g.profile.APIKey))

	client := powerdns.NewClient(apiURL, g.profile.APIKey, g.log)
	servers, err := client.ListServers(ctx)
	if err != nil {
		g.connected = false
		return fmt.Errorf("failed to connect to %s: %w", g.profile.Name, err)
	}
	if len(servers) == 0 {
		g.connected = false
		return fmt.Errorf("failed to connect to %s: no server instances found", g.profile.Name)
	}

	g.client = client
	g.serverID = servers[0].ID
	g.connected = true
	g.log.Info("Connected to %s (server instance %q)", g.profile.Name, g.serverID)
	return nil
}

// EnsureConnected connects if no successful connection has been made yet.
func (g *Gateway) EnsureConnected(ctx context.Context) error {
	if g.connected {
		return nil
	}
	return g.Connect(ctx)
}

// ListZones returns the remote zone list.
func (g *Gateway) ListZones(ctx context.Context) ([]powerdns.Zone, error) {
	if !g.connected {
		return nil, ErrNotConnected
	}
	zones, err := g.client.ListZones(ctx, g.serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}
	return zones, nil
}

// GetZone fetches one zone's detail including full rrset data.
func (g *Gateway) GetZone(ctx context.Context, zoneID string) (*powerdns.Zone, error) {
	if !g.connected {
		return nil, ErrNotConnected
	}
	zone, err := g.client.GetZone(ctx, g.serverID, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}
	return zone, nil
}

// CreateZone creates a zone with a default SOA record and the given nameservers.
func (g *Gateway) CreateZone(ctx context.Context, name, kind string, nameservers []string) error {
	if !g.connected {
		return ErrNotConnected
	}
	canonical := powerdns.CanonicalName(name)
	if nameservers == nil {
		nameservers = []string{}
	}

	zone := &powerdns.Zone{
		Name:        canonical,
		Kind:        kind,
		Nameservers: nameservers,
		RRsets:      []powerdns.RRset{defaultSOA(canonical)},
	}

	if _, err := g.client.CreateZone(ctx, g.serverID, zone); err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// DeleteZone removes a zone and all its records.
func (g *Gateway) DeleteZone(ctx context.Context, zoneID string) error {
	if !g.connected {
		return ErrNotConnected
	}
	if err := g.client.DeleteZone(ctx, g.serverID, zoneID); err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	return nil
}

// UpsertRRset replaces the record-set with the given name and type.
func (g *Gateway) UpsertRRset(ctx context.Context, zoneID string, rrset powerdns.RRset) error {
	if !g.connected {
		return ErrNotConnected
	}
	rrset.ChangeType = "REPLACE"
	patch := &powerdns.ZonePatch{RRsets: []powerdns.RRset{rrset}}
	if err := g.client.PatchZone(ctx, g.serverID, zoneID, patch); err != nil {
		return fmt.Errorf("failed to update records: %w", err)
	}
	return nil
}

// DeleteRRset removes the entire record-set with the given name and type.
func (g *Gateway) DeleteRRset(ctx context.Context, zoneID, name, rtype string) error {
	if !g.connected {
		return ErrNotConnected
	}
	patch := &powerdns.ZonePatch{RRsets: []powerdns.RRset{{
		Name:       name,
		Type:       rtype,
		ChangeType: "DELETE",
		Records:    []powerdns.Record{},
	}}}
	if err := g.client.PatchZone(ctx, g.serverID, zoneID, patch); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

// defaultSOA builds the SOA record-set for a freshly created zone.
// The serial is the current UTC date suffixed with "00".
func defaultSOA(zoneName string) powerdns.RRset {
	serial := time.Now().UTC().Format("20060102") + "00"
	content := fmt.Sprintf(
		"ns1.%s hostmaster.%s %s 28800 7200 604800 86400",
		zoneName, zoneName, serial,
	)
	return powerdns.RRset{
		Name:    zoneName,
		Type:    "SOA",
		TTL:     86400,
		Records: []powerdns.Record{{Content: content, Disabled: false}},
	}
}

// normalizeAPIURL appends the API version path if the URL doesn't already
// carry it, inserting a separating slash only when needed.
func normalizeAPIURL(raw string) string {
	if strings.HasSuffix(raw, apiPathSuffix) {
		return raw
	}
	if strings.HasSuffix(raw, "/") {
		return raw + strings.TrimPrefix(apiPathSuffix, "/")
	}
	return raw + apiPathSuffix
}

// deriveFQDN extracts the hostname from a profile URL for display.
func deriveFQDN(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if host := u.Hostname(); host != "" {
		return host
	}
	if u.Host != "" {
		return u.Host
	}
	return raw
}
