package view

import (
	"testing"

	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/dataset"
)

func rec(model string) dataset.Record {
	return dataset.Record{"Model": model, "Price": "$100"}
}

func models(records []dataset.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Get("Model")
	}
	return out
}

func TestFilterDefaultKeepsEverything(t *testing.T) {
	records := []dataset.Record{rec("iPhone 15"), rec("Samsung Galaxy"), rec("Desk Lamp")}
	got := Filter(records, "Model", NewFilterState())
	if len(got) != 3 {
		t.Fatalf("kept %d records, want 3", len(got))
	}
}

func TestFilterExcludesDisabledCategory(t *testing.T) {
	records := []dataset.Record{rec("iPhone 15"), rec("Samsung Galaxy S21"), rec("Pixel 8"), rec("Desk Lamp")}
	s := NewFilterState()
	s.ToggleDevice(classify.DeviceAndroid)

	got := Filter(records, "Model", s)
	for _, r := range got {
		if cat, _ := classify.Device(r.Get("Model")); cat == classify.DeviceAndroid {
			t.Fatalf("android record %q survived with android off", r.Get("Model"))
		}
	}
	if len(got) != 2 {
		t.Fatalf("kept %d records, want 2", len(got))
	}
}

func TestFilterGenerationGate(t *testing.T) {
	records := []dataset.Record{rec("iPhone 14"), rec("iPhone 15"), rec("Samsung Galaxy")}
	s := NewFilterState()
	s.ToggleGeneration(classify.Gen14)

	got := models(Filter(records, "Model", s))
	if len(got) != 2 || got[0] != "iPhone 15" || got[1] != "Samsung Galaxy" {
		t.Fatalf("got %v, want [iPhone 15, Samsung Galaxy]", got)
	}
}

func TestFilterGenerationIgnoredWhenIphoneOff(t *testing.T) {
	// With the iPhone bucket disabled the generation toggles are never
	// consulted; non-iPhone records pass untouched.
	records := []dataset.Record{rec("iPhone 14"), rec("Samsung Galaxy")}
	s := NewFilterState()
	s.ToggleDevice(classify.DeviceIphone)
	s.ToggleGeneration(classify.GenUnknown)

	got := models(Filter(records, "Model", s))
	if len(got) != 1 || got[0] != "Samsung Galaxy" {
		t.Fatalf("got %v, want [Samsung Galaxy]", got)
	}
}

func TestFilterAllOffIsEmptyNotError(t *testing.T) {
	records := []dataset.Record{rec("iPhone 15"), rec("Pixel 8"), rec("Desk Lamp")}
	s := NewFilterState()
	for _, c := range classify.DeviceCategories {
		s.ToggleDevice(c)
	}
	if got := Filter(records, "Model", s); len(got) != 0 {
		t.Fatalf("kept %d records, want 0", len(got))
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	records := []dataset.Record{rec("iPhone 17"), rec("Pixel 8"), rec("iPhone 16"), rec("iPhone 15")}
	s := NewFilterState()
	s.ToggleDevice(classify.DeviceAndroid)

	got := models(Filter(records, "Model", s))
	want := []string{"iPhone 17", "iPhone 16", "iPhone 15"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := NewFilterState()
	s.ToggleDevice(classify.DeviceIphone)
	if s.Device[classify.DeviceIphone] {
		t.Fatal("toggle should disable")
	}
	s.ToggleDevice(classify.DeviceIphone)
	if !s.Device[classify.DeviceIphone] {
		t.Fatal("second toggle should re-enable")
	}
}
