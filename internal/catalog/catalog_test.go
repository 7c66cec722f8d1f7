package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Size() == 0 {
		t.Fatal("default catalog is empty")
	}
	if got := cat.Categorize("transfer_into_account"); got != CategoryAction {
		t.Fatalf("transfer_into_account = %s, want action", got)
	}
	if got := cat.Categorize("age_limit"); got != CategoryKnowledge {
		t.Fatalf("age_limit = %s, want knowledge", got)
	}
	if got := cat.Categorize("xyz_unknown"); got != CategoryFallback {
		t.Fatalf("xyz_unknown = %s, want fallback", got)
	}
}

func TestNewRejectsOverlap(t *testing.T) {
	_, err := New([]string{"change_pin"}, []string{"age_limit", "change_pin"})
	if err == nil {
		t.Fatal("expected disjointness violation")
	}
}

func TestNewRejectsBlankNames(t *testing.T) {
	if _, err := New([]string{" "}, nil); err == nil {
		t.Fatal("expected error for blank action intent")
	}
	if _, err := New(nil, []string{""}); err == nil {
		t.Fatal("expected error for blank knowledge intent")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `action_intents:
  - change_pin
knowledge_intents:
  - age_limit
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cat.Size() != 2 {
		t.Fatalf("size = %d, want 2", cat.Size())
	}
	if got := cat.Categorize("change_pin"); got != CategoryAction {
		t.Fatalf("change_pin = %s, want action", got)
	}
}

func TestLoadFileRejectsOverlap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `action_intents:
  - change_pin
knowledge_intents:
  - change_pin
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected overlap error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
