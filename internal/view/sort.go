package view

import (
	"sort"

	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/dataset"
)

// SortOrder is the tri-state price ordering. Only the price column is
// sortable; there is no multi-column sort.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// Next advances the order one step in the None → Ascending → Descending
// cycle.
func (o SortOrder) Next() SortOrder {
	switch o {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// String returns the indicator used in the price column header.
func (o SortOrder) String() string {
	switch o {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// Sort orders records by the numeric projection of their price field.
// SortNone returns the input as-is. The sort is stable, so equal prices
// keep their pre-sort relative order, and the input slice is never
// mutated.
func Sort(records []dataset.Record, priceField string, o SortOrder) []dataset.Record {
	if o == SortNone || len(records) < 2 {
		return records
	}

	type keyed struct {
		rec   dataset.Record
		price float64
	}
	rows := make([]keyed, len(records))
	for i, rec := range records {
		rows[i] = keyed{rec: rec, price: classify.Price(rec.Get(priceField))}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if o == SortAscending {
			return rows[i].price < rows[j].price
		}
		return rows[i].price > rows[j].price
	})

	out := make([]dataset.Record, len(rows))
	for i, row := range rows {
		out[i] = row.rec
	}
	return out
}
