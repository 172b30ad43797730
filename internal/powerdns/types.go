package powerdns

// Server represents a PowerDNS server instance controlled by the API.
// See: https://doc.powerdns.com/authoritative/http-api/server.html
type Server struct {
	ID         string `json:"id"`
	URL        string `json:"url,omitempty"`
	DaemonType string `json:"daemon_type,omitempty"`
	Version    string `json:"version,omitempty"`
}

// Zone represents a PowerDNS zone for API requests/responses.
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
type Zone struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Type    string   `json:"type,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	URL     string   `json:"url,omitempty"`
	Masters []string `json:"masters,omitempty"`
	// Nameservers is submitted on zone creation; an explicit empty list is
	// valid, so no omitempty.
	Nameservers []string `json:"nameservers"`
	// Serial and NotifiedSerial are pointers so an absent field can be
	// told apart from a zero value when rendering.
	Serial         *int64  `json:"serial,omitempty"`
	NotifiedSerial *int64  `json:"notified_serial,omitempty"`
	RRsets         []RRset `json:"rrsets,omitempty"`
}

// RRset represents a Resource Record Set (all records with the same name and type).
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
type RRset struct {
	// Name for record set (e.g. "www.powerdns.com.")
	Name string `json:"name"`
	// Type of this record (e.g. "A", "PTR", "MX")
	Type string `json:"type"`
	// TTL is the DNS TTL of the records in seconds.
	// MUST NOT be included when changetype is "DELETE"
	TTL uint32 `json:"ttl,omitempty"`
	// ChangeType MUST be added when updating the RRset.
	// One of: DELETE, REPLACE
	ChangeType string `json:"changetype,omitempty"`
	// Records in this RRset
	Records []Record `json:"records"`
}

// Record represents a single DNS record.
type Record struct {
	// Content is the content of this record
	Content string `json:"content"`
	// Disabled indicates whether this record is disabled
	Disabled bool `json:"disabled"`
}

// ZonePatch represents a PATCH request body for modifying zone RRsets.
type ZonePatch struct {
	RRsets []RRset `json:"rrsets"`
}

// APIError represents an error response from PowerDNS API.
type APIError struct {
	Error string `json:"error"`
}
