// Package config handles loading and validating server connection profiles.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default display names for profiles that don't carry one.
const (
	defaultServerName = "Unnamed Server"
	flagsServerName   = "Default Server"
)

// Profile holds the connection details for one PowerDNS server.
// Profiles are immutable after startup.
type Profile struct {
	Name   string
	URL    string
	APIKey string
}

// fileConfig mirrors the YAML configuration file layout.
type fileConfig struct {
	Servers []serverEntry `yaml:"servers"`
}

type serverEntry struct {
	Name   string `yaml:"name,omitempty"`
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// LoadFromFile loads connection profiles from a YAML file.
func LoadFromFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if errs := validate(&cfg); errs != nil {
		return nil, errs
	}

	profiles := make([]Profile, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		name := s.Name
		if name == "" {
			name = defaultServerName
		}
		profiles = append(profiles, Profile{
			Name:   name,
			URL:    s.URL,
			APIKey: s.APIKey,
		})
	}
	return profiles, nil
}

// FromFlags creates a single-server profile from direct parameters.
func FromFlags(url, apiKey string) []Profile {
	return []Profile{{
		Name:   flagsServerName,
		URL:    url,
		APIKey: apiKey,
	}}
}

// ValidationError holds all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"validation failed with %d error(s):\n  - %s",
		len(e.Errors),
		strings.Join(e.Errors, "\n  - "),
	)
}

// Add appends a formatted error message to the validation errors.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// validate checks the parsed file and returns all errors at once.
func validate(cfg *fileConfig) *ValidationError {
	errs := &ValidationError{}

	if len(cfg.Servers) == 0 {
		errs.Add("configuration must list at least one server")
	}

	for i, s := range cfg.Servers {
		if s.URL == "" {
			errs.Add("server[%d] (%s): url is required", i, displayName(s))
		}
		if s.APIKey == "" {
			errs.Add("server[%d] (%s): api_key is required", i, displayName(s))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func displayName(s serverEntry) string {
	if s.Name != "" {
		return s.Name
	}
	return defaultServerName
}
