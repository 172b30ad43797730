package view

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError holds all form validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Add appends a formatted error message to the validation errors.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ZoneKinds are the zone kinds offered by the create form.
var ZoneKinds = []string{"Native", "Master", "Slave"}

// RecordTypes are the record types offered by the create form.
var RecordTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV", "PTR"}

// ZoneForm carries the raw input of the zone creation dialog.
type ZoneForm struct {
	Name        string
	Kind        string
	Nameservers string
}

// ZonePayload is a validated zone creation request.
type ZonePayload struct {
	Name        string
	Kind        string
	Nameservers []string
}

// Validate checks the form input and builds the creation payload.
func (f ZoneForm) Validate() (ZonePayload, error) {
	errs := &ValidationError{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs.Add("zone name is required")
	}

	validKind := false
	for _, k := range ZoneKinds {
		if f.Kind == k {
			validKind = true
			break
		}
	}
	if !validKind {
		errs.Add("kind must be one of: %s", strings.Join(ZoneKinds, ", "))
	}

	if errs.HasErrors() {
		return ZonePayload{}, errs
	}

	return ZonePayload{
		Name:        name,
		Kind:        f.Kind,
		Nameservers: splitNameservers(f.Nameservers),
	}, nil
}

// splitNameservers parses a comma-separated nameserver list, trimming
// entries and dropping empty ones.
func splitNameservers(input string) []string {
	var nameservers []string
	for _, ns := range strings.Split(input, ",") {
		ns = strings.TrimSpace(ns)
		if ns != "" {
			nameservers = append(nameservers, ns)
		}
	}
	return nameservers
}

// RecordForm carries the raw input of the record creation dialog.
type RecordForm struct {
	Name    string
	Type    string
	Content string
	TTL     string
}

// RecordPayload is a validated record creation request.
type RecordPayload struct {
	Name    string
	Type    string
	Content string
	TTL     uint32
}

// Validate checks the form input and builds the creation payload.
func (f RecordForm) Validate() (RecordPayload, error) {
	errs := &ValidationError{}

	// An empty name is allowed; it addresses the zone apex.
	name := strings.TrimSpace(f.Name)
	content := strings.TrimSpace(f.Content)
	if content == "" {
		errs.Add("record content is required")
	}

	ttl, err := parseTTL(f.TTL)
	if err != nil {
		errs.Add("%v", err)
	}

	if errs.HasErrors() {
		return RecordPayload{}, errs
	}

	return RecordPayload{
		Name:    name,
		Type:    f.Type,
		Content: content,
		TTL:     ttl,
	}, nil
}

// RecordEditForm carries the raw input of the record edit dialog.
type RecordEditForm struct {
	Content string
	TTL     string
}

// RecordEditPayload is a validated record edit request.
type RecordEditPayload struct {
	Content string
	TTL     uint32
}

// Validate checks the form input and builds the edit payload.
func (f RecordEditForm) Validate() (RecordEditPayload, error) {
	errs := &ValidationError{}

	content := strings.TrimSpace(f.Content)
	if content == "" {
		errs.Add("record content is required")
	}

	ttl, err := parseTTL(f.TTL)
	if err != nil {
		errs.Add("%v", err)
	}

	if errs.HasErrors() {
		return RecordEditPayload{}, errs
	}

	return RecordEditPayload{Content: content, TTL: ttl}, nil
}

func parseTTL(input string) (uint32, error) {
	ttl, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("TTL must be a number")
	}
	return uint32(ttl), nil
}
