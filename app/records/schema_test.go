package records

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSchemas_PickPriorityOrder(t *testing.T) {
	s := DefaultSchemas().Issues

	// Both candidates present: the earlier one wins.
	row := RawRow{"Incident/Problem": "primary", "Incident": "fallback"}
	if got := s.pick(row, "issue"); got != "primary" {
		t.Errorf("Expected primary header to win, got %q", got)
	}

	// Primary empty: fall through to the next candidate.
	row = RawRow{"Incident/Problem": "", "Incident": "fallback"}
	if got := s.pick(row, "issue"); got != "fallback" {
		t.Errorf("Expected fallback header, got %q", got)
	}

	// Nothing set.
	if got := s.pick(RawRow{}, "issue"); got != "" {
		t.Errorf("Expected empty pick, got %q", got)
	}
}

func TestLoadSchemas_NoDir(t *testing.T) {
	set, err := LoadSchemas("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if set == nil || len(set.Issues["issue"]) == 0 {
		t.Error("Expected compiled-in defaults when no dir is configured")
	}

	set, err = LoadSchemas("/nonexistent/path")
	if err != nil {
		t.Fatalf("Missing dir should fall back to defaults, got error: %v", err)
	}
	if set == nil {
		t.Fatal("Expected defaults for a missing dir")
	}
}

func TestLoadSchemas_Override(t *testing.T) {
	dir := t.TempDir()
	override := `issues:
  issue: ["Problem Statement"]
`
	if err := os.WriteFile(filepath.Join(dir, "schemas.yml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadSchemas(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := set.Issues.pick(RawRow{"Problem Statement": "x"}, "issue"); got != "x" {
		t.Errorf("Expected override candidate to be used, got %q", got)
	}
	// Untouched fields keep their defaults.
	if got := set.Issues.pick(RawRow{"Date": "01/01/2024"}, "date"); got != "01/01/2024" {
		t.Errorf("Expected default date candidates to survive the overlay, got %q", got)
	}
}

func TestLoadSchemas_RejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	override := `press:
  color: ["Colour"]
`
	if err := os.WriteFile(filepath.Join(dir, "schemas.yml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSchemas(dir); err == nil {
		t.Error("Expected an error for an unknown schema field")
	}
}

func TestLoadSchemas_RejectsEmptyCandidates(t *testing.T) {
	dir := t.TempDir()
	override := `issues:
  issue: []
`
	if err := os.WriteFile(filepath.Join(dir, "schemas.yml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSchemas(dir); err == nil {
		t.Error("Expected an error for an empty candidate list")
	}
}
