package view

import (
	"strings"

	"github.com/kreigan/powerdns-tui/internal/powerdns"
)

// RecordRow is one displayable record, flattened out of a zone's record-sets.
// It keeps a copy of the owning record-set and its own index within it,
// because PowerDNS mutates per record-set (all records sharing name+type),
// not per individual record value.
type RecordRow struct {
	Name     string
	Type     string
	Content  string
	TTL      uint32
	Disabled bool

	// RRset is the record-set this row was flattened from.
	RRset powerdns.RRset
	// Index is this row's position in RRset.Records.
	Index int
}

// FlattenRecords emits one row per record of every record-set in the zone
// detail, in list order.
func FlattenRecords(zone *powerdns.Zone) []RecordRow {
	var rows []RecordRow
	if zone == nil {
		return rows
	}
	for _, rrset := range zone.RRsets {
		for i, rec := range rrset.Records {
			rows = append(rows, RecordRow{
				Name:     rrset.Name,
				Type:     rrset.Type,
				Content:  rec.Content,
				TTL:      rrset.TTL,
				Disabled: rec.Disabled,
				RRset:    rrset,
				Index:    i,
			})
		}
	}
	return rows
}

// FilterRecords returns the rows matching term, case-insensitively, against
// record name, type or content. An empty term matches everything.
func FilterRecords(rows []RecordRow, term string) []RecordRow {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)

	var matched []RecordRow
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Type), needle) ||
			strings.Contains(strings.ToLower(r.Content), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
