package view

import (
	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/dataset"
)

// Session is the control surface the rest of the application drives. It
// owns the loaded dataset plus the explicit filter/sort state, and
// recomputes the view synchronously on demand. No internal concurrency:
// callers serialize access (the TUI's Update loop already does).
type Session struct {
	ds      dataset.Dataset
	fields  Fields
	filters FilterState
	order   SortOrder
}

// NewSession wraps a loaded dataset with permissive filters and no sort.
func NewSession(ds dataset.Dataset, fields Fields) *Session {
	if fields.Model == "" {
		fields.Model = DefaultFields().Model
	}
	if fields.Price == "" {
		fields.Price = DefaultFields().Price
	}
	return &Session{ds: ds, fields: fields, filters: NewFilterState()}
}

// Reset swaps in a freshly loaded dataset. Filter and sort state survive,
// so a live reload does not disturb what the user toggled.
func (s *Session) Reset(ds dataset.Dataset) {
	s.ds = ds
}

// ToggleDeviceFilter flips one device-category toggle.
func (s *Session) ToggleDeviceFilter(c classify.DeviceCategory) {
	s.filters.ToggleDevice(c)
}

// ToggleGenerationFilter flips one generation toggle.
func (s *Session) ToggleGenerationFilter(g classify.Generation) {
	s.filters.ToggleGeneration(g)
}

// CycleSort advances the price ordering one step and returns the new order.
func (s *Session) CycleSort() SortOrder {
	s.order = s.order.Next()
	return s.order
}

// View materializes the current filtered, sorted, annotated row set.
func (s *Session) View() []Row {
	return BuildView(s.ds, s.fields, s.filters, s.order)
}

// Counts returns aggregate totals over the unfiltered dataset.
func (s *Session) Counts() Counts {
	return Tally(s.ds.Records, s.fields.Model)
}

// Filters exposes the current toggle state for rendering.
func (s *Session) Filters() FilterState {
	return s.filters
}

// Order returns the current sort order.
func (s *Session) Order() SortOrder {
	return s.order
}

// Headers returns the dataset's column order.
func (s *Session) Headers() []string {
	return s.ds.Headers
}

// Fields returns the configured model/price column names.
func (s *Session) Fields() Fields {
	return s.fields
}

// Len returns the unfiltered record count.
func (s *Session) Len() int {
	return len(s.ds.Records)
}
