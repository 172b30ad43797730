package view

import (
	"context"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

// mockGateway implements ServerGateway for testing.
type mockGateway struct {
	name string
	fqdn string

	connectErr error
	connected  bool

	zones    []powerdns.Zone
	listErr  error
	zone     *powerdns.Zone
	getErr   error
	upserted []upsertCall
	deleted  []deleteCall

	createdZones []createZoneCall
	deletedZones []string
}

type upsertCall struct {
	zoneID string
	rrset  powerdns.RRset
}

type deleteCall struct {
	zoneID string
	name   string
	rtype  string
}

type createZoneCall struct {
	name        string
	kind        string
	nameservers []string
}

func (m *mockGateway) Name() string    { return m.name }
func (m *mockGateway) FQDN() string    { return m.fqdn }
func (m *mockGateway) Connected() bool { return m.connected }

func (m *mockGateway) Connect(_ context.Context) error {
	if m.connectErr != nil {
		return m.connectErr
	}
	m.connected = true
	return nil
}

func (m *mockGateway) EnsureConnected(ctx context.Context) error {
	if m.connected {
		return nil
	}
	return m.Connect(ctx)
}

func (m *mockGateway) ListZones(_ context.Context) ([]powerdns.Zone, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.zones, nil
}

func (m *mockGateway) GetZone(_ context.Context, _ string) (*powerdns.Zone, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.zone, nil
}

func (m *mockGateway) CreateZone(_ context.Context, name, kind string, nameservers []string) error {
	m.createdZones = append(m.createdZones, createZoneCall{name: name, kind: kind, nameservers: nameservers})
	return nil
}

func (m *mockGateway) DeleteZone(_ context.Context, zoneID string) error {
	m.deletedZones = append(m.deletedZones, zoneID)
	return nil
}

func (m *mockGateway) UpsertRRset(_ context.Context, zoneID string, rrset powerdns.RRset) error {
	m.upserted = append(m.upserted, upsertCall{zoneID: zoneID, rrset: rrset})
	return nil
}

func (m *mockGateway) DeleteRRset(_ context.Context, zoneID, name, rtype string) error {
	m.deleted = append(m.deleted, deleteCall{zoneID: zoneID, name: name, rtype: rtype})
	return nil
}
