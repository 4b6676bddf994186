package state

import (
	"sync"
	"time"

	"github.com/mwrend/lotview/internal/dataset"
)

// Snapshot is the latest dataset available to the UI, delivered atomically.
// The core never sees a partially loaded dataset: a snapshot either carries
// the whole new file or keeps the previous one alongside the load error.
type Snapshot struct {
	Data        dataset.Dataset
	HasData     bool
	LastUpdated time.Time
	LastError   error
	Loads       int // successful loads, so the UI can show reload activity
}

// Store coordinates updates between the loader/watcher goroutine and the
// UI's snapshot reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored dataset. When err is non-nil the previous
// dataset is kept and only the error is recorded, so a bad rewrite of the
// source file never blanks the view.
func (s *Store) Update(ds dataset.Dataset, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Data = ds.Clone()
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.Loads++
}

// Snapshot returns an independent copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Data = s.snapshot.Data.Clone()
	return snap
}
