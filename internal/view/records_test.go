package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

func recordFixture() *powerdns.Zone {
	return &powerdns.Zone{
		Name: "example.com.",
		RRsets: []powerdns.RRset{
			{
				Name: "a.example.com.", Type: "A", TTL: 300,
				Records: []powerdns.Record{{Content: "1.1.1.1"}},
			},
			{
				Name: "b.example.com.", Type: "TXT", TTL: 60,
				Records: []powerdns.Record{{Content: "hi"}, {Content: "bye"}},
			},
		},
	}
}

func TestFlattenRecords(t *testing.T) {
	rows := FlattenRecords(recordFixture())
	require.Len(t, rows, 3)

	txt := 0
	for _, r := range rows {
		if r.Type == "TXT" {
			txt++
		}
	}
	assert.Equal(t, 2, txt)

	assert.Equal(t, "a.example.com.", rows[0].Name)
	assert.Equal(t, uint32(300), rows[0].TTL)
	assert.Equal(t, 0, rows[0].Index)

	// Rows carry their owning record-set and position within it
	assert.Equal(t, "b.example.com.", rows[2].RRset.Name)
	assert.Equal(t, 1, rows[2].Index)
	assert.Equal(t, "bye", rows[2].Content)
}

func TestFlattenRecords_Empty(t *testing.T) {
	assert.Empty(t, FlattenRecords(nil))
	assert.Empty(t, FlattenRecords(&powerdns.Zone{Name: "example.com."}))
}

func TestFilterRecords(t *testing.T) {
	rows := FlattenRecords(recordFixture())

	assert.Len(t, FilterRecords(rows, ""), 3)
	assert.Len(t, FilterRecords(rows, "txt"), 2)
	assert.Len(t, FilterRecords(rows, "TXT"), 2)
	assert.Len(t, FilterRecords(rows, "1.1.1.1"), 1)
	assert.Len(t, FilterRecords(rows, "b.example"), 2)
	assert.Empty(t, FilterRecords(rows, "nothing"))
}

func TestZoneForm_Validate(t *testing.T) {
	payload, err := ZoneForm{
		Name:        " example.com. ",
		Kind:        "Native",
		Nameservers: "ns1.example.com., , ns2.example.com.",
	}.Validate()
	require.NoError(t, err)

	assert.Equal(t, "example.com.", payload.Name)
	assert.Equal(t, "Native", payload.Kind)
	assert.Equal(t, []string{"ns1.example.com.", "ns2.example.com."}, payload.Nameservers)
}

func TestZoneForm_EmptyNameRejected(t *testing.T) {
	_, err := ZoneForm{Name: "   ", Kind: "Native"}.Validate()
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Contains(t, verr.Error(), "zone name is required")
}

func TestZoneForm_InvalidKindRejected(t *testing.T) {
	_, err := ZoneForm{Name: "example.com.", Kind: "Weird"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind must be one of")
}

func TestZoneForm_EmptyNameserversAllowed(t *testing.T) {
	payload, err := ZoneForm{Name: "example.com.", Kind: "Slave"}.Validate()
	require.NoError(t, err)
	assert.Empty(t, payload.Nameservers)
}

func TestRecordForm_Validate(t *testing.T) {
	payload, err := RecordForm{
		Name: "www", Type: "A", Content: "192.168.1.1", TTL: "3600",
	}.Validate()
	require.NoError(t, err)

	assert.Equal(t, "www", payload.Name)
	assert.Equal(t, uint32(3600), payload.TTL)
}

func TestRecordForm_NonNumericTTLRejected(t *testing.T) {
	_, err := RecordForm{
		Name: "www", Type: "A", Content: "192.168.1.1", TTL: "abc",
	}.Validate()
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Error(), "TTL must be a number")
}

func TestRecordForm_MissingContentRejected(t *testing.T) {
	_, err := RecordForm{Name: "www", Type: "A", TTL: "300"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record content is required")
}

func TestRecordForm_EmptyNameIsApex(t *testing.T) {
	payload, err := RecordForm{Type: "NS", Content: "ns1.example.com.", TTL: "3600"}.Validate()
	require.NoError(t, err)
	assert.Empty(t, payload.Name)
}

func TestRecordEditForm_Validate(t *testing.T) {
	payload, err := RecordEditForm{Content: "10.0.0.1", TTL: "60"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", payload.Content)
	assert.Equal(t, uint32(60), payload.TTL)

	_, err = RecordEditForm{Content: "", TTL: "60"}.Validate()
	require.Error(t, err)

	_, err = RecordEditForm{Content: "10.0.0.1", TTL: "abc"}.Validate()
	require.Error(t, err)
}
