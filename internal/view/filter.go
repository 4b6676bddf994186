package view

import (
	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/dataset"
)

// FilterState holds the active category and generation toggles. Both maps
// default to all-true (no filtering) and are mutated only by explicit
// toggle calls; loading a new dataset never resets them.
type FilterState struct {
	Device     map[classify.DeviceCategory]bool
	Generation map[classify.Generation]bool
}

// NewFilterState returns a permissive state with every toggle enabled.
func NewFilterState() FilterState {
	s := FilterState{
		Device:     make(map[classify.DeviceCategory]bool, len(classify.DeviceCategories)),
		Generation: make(map[classify.Generation]bool, len(classify.Generations)),
	}
	for _, c := range classify.DeviceCategories {
		s.Device[c] = true
	}
	for _, g := range classify.Generations {
		s.Generation[g] = true
	}
	return s
}

// ToggleDevice flips one device-category toggle.
func (s FilterState) ToggleDevice(c classify.DeviceCategory) {
	s.Device[c] = !s.Device[c]
}

// ToggleGeneration flips one generation toggle.
func (s FilterState) ToggleGeneration(g classify.Generation) {
	s.Generation[g] = !s.Generation[g]
}

// Filter returns the records that survive the active toggles, preserving
// input order. A record is kept when its device category is enabled; iPhone
// records must additionally pass their generation toggle, but only while
// the iPhone category itself is enabled. With iPhone off the generation
// toggles are never consulted. All toggles off yields an empty, valid
// result.
func Filter(records []dataset.Record, modelField string, s FilterState) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		cat, gen := classify.Device(rec.Get(modelField))
		if !s.Device[cat] {
			continue
		}
		if s.Device[classify.DeviceIphone] && cat == classify.DeviceIphone && !s.Generation[gen] {
			continue
		}
		out = append(out, rec)
	}
	return out
}
