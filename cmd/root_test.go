package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveProfilesFromFlags(t *testing.T) {
	profiles, err := resolveProfiles("", "http://localhost:8081", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if profiles[0].URL != "http://localhost:8081" {
		t.Errorf("unexpected URL: %s", profiles[0].URL)
	}
}

func TestResolveProfilesFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `servers:
  - name: Test Server
    url: http://localhost:8081
    api_key: secret
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	profiles, err := resolveProfiles(path, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if profiles[0].Name != "Test Server" {
		t.Errorf("unexpected name: %s", profiles[0].Name)
	}
}

func TestResolveProfilesConflictingSources(t *testing.T) {
	_, err := resolveProfiles("config.yaml", "http://localhost:8081", "secret")
	if err == nil {
		t.Fatal("expected error for conflicting sources")
	}
	if !strings.Contains(err.Error(), "cannot be combined") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveProfilesPartialFlags(t *testing.T) {
	_, err := resolveProfiles("", "http://localhost:8081", "")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "both --url and --api-key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveProfilesNoSource(t *testing.T) {
	_, err := resolveProfiles("", "", "")
	if err == nil {
		t.Fatal("expected error when no connection details are given")
	}
	if !strings.Contains(err.Error(), "no connection details") {
		t.Errorf("unexpected error: %v", err)
	}
}
