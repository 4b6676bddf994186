package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	body := "Model,Price\niPhone 16,$500\niPhone 13,$300\nSamsung Galaxy,$200\nDesk Lamp,$20\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCommand("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCountsCommand(t *testing.T) {
	out := runCommand(t, "counts", writeFixture(t))
	for _, want := range []string{"records: 4", "iPhone   2", "Android  1", "Other    1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("counts output missing %q:\n%s", want, out)
		}
	}
}

func TestClassifyCommand(t *testing.T) {
	out := runCommand(t, "classify", "iPhone 15 Pro 256GB open box $650")
	for _, want := range []string{"category:   iPhone", "generation: 15", "storage:    256GB", "grade:      Open Box", "price:      650.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("classify output missing %q:\n%s", want, out)
		}
	}
}

func TestExportCommandSorted(t *testing.T) {
	src := writeFixture(t)
	dst := filepath.Join(t.TempDir(), "out.csv")

	out := runCommand(t, "export", src, "--out", dst, "--sort", "asc")
	if !strings.Contains(out, "exported 4 rows") {
		t.Fatalf("export output = %q", out)
	}

	body, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 5 {
		t.Fatalf("exported %d lines, want header + 4 rows", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Desk Lamp") {
		t.Fatalf("first data row = %q, want cheapest", lines[1])
	}
	if !strings.HasPrefix(lines[4], "iPhone 16") {
		t.Fatalf("last data row = %q, want most expensive", lines[4])
	}
}

func TestExportCommandRejectsBadSort(t *testing.T) {
	cmd := NewRootCommand("test", "none", "unknown")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export", writeFixture(t), "--sort", "sideways"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown sort order")
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	if !strings.Contains(out, "lotview test") {
		t.Fatalf("version output = %q", out)
	}
}
