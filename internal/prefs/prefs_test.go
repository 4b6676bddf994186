package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if p.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want Dracula", p.Theme)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "Nord"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p := Load(path)
	if p.Theme != "Nord" {
		t.Fatalf("Theme = %q, want Nord", p.Theme)
	}
}

func TestLoadBrokenTomlDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [nope"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want default on parse failure", p.Theme)
	}
}

func TestLoadBlankThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	if p := Load(path); p.Theme != "Dracula" {
		t.Fatalf("Theme = %q, want default for blank theme", p.Theme)
	}
}
