package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadHeaderOrderAndValues(t *testing.T) {
	in := "Model,Price,Photo\niPhone 16,$500,https://example.com/a.jpg\nSamsung Galaxy,$200,\n"
	ds, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"Model", "Price", "Photo"}
	if len(ds.Headers) != 3 || ds.Headers[0] != want[0] || ds.Headers[1] != want[1] || ds.Headers[2] != want[2] {
		t.Fatalf("Headers = %v, want %v", ds.Headers, want)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(ds.Records))
	}
	if got := ds.Records[0].Get("Price"); got != "$500" {
		t.Fatalf("Price = %q, want $500", got)
	}
	if got := ds.Records[1].Get("Photo"); got != "" {
		t.Fatalf("Photo = %q, want empty", got)
	}
}

func TestReadRaggedRows(t *testing.T) {
	in := "Model,Price,Notes\niPhone 14,$300\nDesk Lamp,$20,used,extra\n"
	ds, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := ds.Records[0].Get("Notes"); got != "" {
		t.Fatalf("short row Notes = %q, want empty", got)
	}
	if got := ds.Records[1].Get("Notes"); got != "used" {
		t.Fatalf("long row Notes = %q, want used", got)
	}
}

func TestReadEmptyInput(t *testing.T) {
	ds, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ds.Empty() || len(ds.Headers) != 0 {
		t.Fatalf("expected empty dataset, got %#v", ds)
	}
}

func TestRecordIsBlank(t *testing.T) {
	if !(Record{"A": "", "B": "  "}).IsBlank() {
		t.Fatal("whitespace-only record should be blank")
	}
	if (Record{"A": "", "B": "x"}).IsBlank() {
		t.Fatal("record with a value should not be blank")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds := Dataset{Headers: []string{"A"}, Records: []Record{{"A": "1"}}}
	dup := ds.Clone()
	dup.Records[0]["A"] = "changed"
	if ds.Records[0]["A"] != "1" {
		t.Fatalf("clone shares storage with original")
	}
}

func TestLoadAndExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "listings.csv")
	if err := os.WriteFile(src, []byte("Model,Price\niPhone 15,$450\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(ds.Records))
	}

	out := filepath.Join(dir, "out", "view.csv")
	if err := Export(out, ds.Headers, ds.Records); err != nil {
		t.Fatalf("Export: %v", err)
	}

	back, err := Load(out)
	if err != nil {
		t.Fatalf("Load exported: %v", err)
	}
	if len(back.Records) != 1 || back.Records[0].Get("Price") != "$450" {
		t.Fatalf("round trip mismatch: %#v", back.Records)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
