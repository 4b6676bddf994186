// Package dataset loads and persists the tabular listing data lotview
// displays. The loader is the only place raw CSV is touched; everything
// downstream works with flat Record values and the header order captured
// at load time.
package dataset

import "strings"

// Record is one row of the dataset: a flat field-to-value mapping.
// Values may be empty; the field set is homogeneous across a dataset and
// comes from the header row.
type Record map[string]string

// Get returns the value for a field, or "" when the field is absent.
func (r Record) Get(field string) string {
	return r[field]
}

// IsBlank reports whether every field value is empty or whitespace-only.
// Blank rows are kept in the dataset (they count toward totals) but the
// view suppresses them from rendering.
func (r Record) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Dataset is an immutable, fully loaded record sequence plus the header
// order that defines column display order.
type Dataset struct {
	Headers []string
	Records []Record
}

// Empty reports whether the dataset holds no records.
func (d Dataset) Empty() bool {
	return len(d.Records) == 0
}

// Clone returns a deep copy so callers can hold a snapshot without
// sharing map storage with the original.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Headers: append([]string(nil), d.Headers...),
		Records: make([]Record, len(d.Records)),
	}
	for i, rec := range d.Records {
		dup := make(Record, len(rec))
		for k, v := range rec {
			dup[k] = v
		}
		out.Records[i] = dup
	}
	return out
}
