package state

import (
	"errors"
	"testing"
	"time"

	"github.com/mwrend/lotview/internal/dataset"
)

func sample() dataset.Dataset {
	return dataset.Dataset{
		Headers: []string{"Model", "Price"},
		Records: []dataset.Record{{"Model": "iPhone 15", "Price": "$450"}},
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(sample(), nil)

	snap := s.Snapshot()
	if !snap.HasData || len(snap.Data.Records) != 1 {
		t.Fatalf("snapshot = %#v, want one record with HasData=true", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.Loads != 1 {
		t.Fatalf("Loads = %d, want 1", snap.Loads)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Data.Records[0]["Model"] = "mutated"
	snap2 := s.Snapshot()
	if snap2.Data.Records[0]["Model"] != "iPhone 15" {
		t.Fatalf("Snapshot should clone records; got %q", snap2.Data.Records[0]["Model"])
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(sample(), nil)
	s.Update(dataset.Dataset{}, errors.New("parse row 3: boom"))

	snap := s.Snapshot()
	if !snap.HasData || len(snap.Data.Records) != 1 {
		t.Fatalf("previous dataset lost on error: %#v", snap)
	}
	if snap.LastError == nil || snap.LastError.Error() != "parse row 3: boom" {
		t.Fatalf("LastError = %v, want parse error", snap.LastError)
	}
	if snap.Loads != 1 {
		t.Fatalf("Loads = %d, want 1", snap.Loads)
	}
}

func TestStore_SuccessClearsError(t *testing.T) {
	var s Store

	s.Update(dataset.Dataset{}, errors.New("boom"))
	s.Update(sample(), nil)

	snap := s.Snapshot()
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after successful update", snap.LastError)
	}
}

func TestStore_ZeroValueIsUsable(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.HasData || snap.LastError != nil || !snap.Data.Empty() {
		t.Fatalf("zero store snapshot = %#v, want empty", snap)
	}
}
