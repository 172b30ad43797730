package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

func TestBuildRecordFQDN(t *testing.T) {
	tests := []struct {
		name     string
		zoneName string
		expected string
	}{
		{"www", "example.com.", "www.example.com."},
		{"www", "example.com", "www.example.com."},
		{"", "example.com.", "example.com."},
		{"", "example.com", "example.com."},
		{"a.b", "example.com.", "a.b.example.com."},
	}

	for _, tt := range tests {
		got := BuildRecordFQDN(tt.name, tt.zoneName)
		assert.Equal(t, tt.expected, got, "BuildRecordFQDN(%q, %q)", tt.name, tt.zoneName)
	}
}

func TestCreateRecord(t *testing.T) {
	gw := &mockGateway{connected: true}

	payload := RecordPayload{Name: "www", Type: "A", Content: "192.168.1.1", TTL: 3600}
	err := CreateRecord(context.Background(), gw, "example.com.", "example.com.", payload)
	require.NoError(t, err)

	require.Len(t, gw.upserted, 1)
	call := gw.upserted[0]
	assert.Equal(t, "example.com.", call.zoneID)
	assert.Equal(t, "www.example.com.", call.rrset.Name)
	assert.Equal(t, "A", call.rrset.Type)
	assert.Equal(t, uint32(3600), call.rrset.TTL)
	require.Len(t, call.rrset.Records, 1)
	assert.Equal(t, "192.168.1.1", call.rrset.Records[0].Content)
	assert.False(t, call.rrset.Records[0].Disabled)
}

func TestEditRecord_PreservesSiblingRecords(t *testing.T) {
	gw := &mockGateway{connected: true}

	rrset := powerdns.RRset{
		Name: "mail.example.com.", Type: "A", TTL: 300,
		Records: []powerdns.Record{
			{Content: "10.0.0.1"},
			{Content: "10.0.0.2", Disabled: true},
		},
	}
	row := RecordRow{
		Name: rrset.Name, Type: rrset.Type, Content: "10.0.0.1",
		TTL: 300, RRset: rrset, Index: 0,
	}

	err := EditRecord(context.Background(), gw, "example.com.", row, RecordEditPayload{Content: "10.0.0.9", TTL: 600})
	require.NoError(t, err)

	require.Len(t, gw.upserted, 1)
	got := gw.upserted[0].rrset
	assert.Equal(t, "mail.example.com.", got.Name)
	assert.Equal(t, uint32(600), got.TTL)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "10.0.0.9", got.Records[0].Content)
	assert.Equal(t, "10.0.0.2", got.Records[1].Content)
	assert.True(t, got.Records[1].Disabled)
}

func TestEditRecord_PreservesDisabledFlag(t *testing.T) {
	gw := &mockGateway{connected: true}

	rrset := powerdns.RRset{
		Name: "www.example.com.", Type: "A", TTL: 300,
		Records: []powerdns.Record{{Content: "10.0.0.1", Disabled: true}},
	}
	row := RecordRow{
		Name: rrset.Name, Type: rrset.Type, Content: "10.0.0.1",
		TTL: 300, Disabled: true, RRset: rrset, Index: 0,
	}

	err := EditRecord(context.Background(), gw, "example.com.", row, RecordEditPayload{Content: "10.0.0.2", TTL: 300})
	require.NoError(t, err)

	require.Len(t, gw.upserted, 1)
	require.Len(t, gw.upserted[0].rrset.Records, 1)
	assert.True(t, gw.upserted[0].rrset.Records[0].Disabled)
}

func TestDeleteRecord_SubmitsWholeRRsetDeletion(t *testing.T) {
	gw := &mockGateway{connected: true}

	rrset := powerdns.RRset{
		Name: "b.example.com.", Type: "TXT", TTL: 60,
		Records: []powerdns.Record{{Content: "hi"}, {Content: "bye"}},
	}
	row := RecordRow{Name: rrset.Name, Type: rrset.Type, Content: "hi", RRset: rrset, Index: 0}

	err := DeleteRecord(context.Background(), gw, "example.com.", row)
	require.NoError(t, err)

	require.Len(t, gw.deleted, 1)
	assert.Equal(t, "example.com.", gw.deleted[0].zoneID)
	assert.Equal(t, "b.example.com.", gw.deleted[0].name)
	assert.Equal(t, "TXT", gw.deleted[0].rtype)
}

func TestCreateZone(t *testing.T) {
	gw := &mockGateway{connected: true}

	payload := ZonePayload{Name: "example.com.", Kind: "Native", Nameservers: []string{"ns1.example.com."}}
	err := CreateZone(context.Background(), gw, payload)
	require.NoError(t, err)

	require.Len(t, gw.createdZones, 1)
	assert.Equal(t, "example.com.", gw.createdZones[0].name)
	assert.Equal(t, "Native", gw.createdZones[0].kind)
	assert.Equal(t, []string{"ns1.example.com."}, gw.createdZones[0].nameservers)
}

func TestDeleteZone(t *testing.T) {
	gw := &mockGateway{connected: true}

	err := DeleteZone(context.Background(), gw, "example.com.")
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com."}, gw.deletedZones)
}

func TestWorkflows_ConnectBeforeOperation(t *testing.T) {
	// A gateway that never connected gets an EnsureConnected call first.
	gw := &mockGateway{}

	err := DeleteZone(context.Background(), gw, "example.com.")
	require.NoError(t, err)
	assert.True(t, gw.connected)
}
