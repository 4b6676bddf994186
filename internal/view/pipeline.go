package view

import (
	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/dataset"
)

// Fields names the dataset columns the engine derives from. Everything
// else passes through untouched apart from per-cell reference
// classification.
type Fields struct {
	Model string
	Price string
}

// DefaultFields matches the column names the listing exports use.
func DefaultFields() Fields {
	return Fields{Model: "Model", Price: "Price"}
}

// Cell is one annotated value of a rendered row.
type Cell struct {
	Value string
	Kind  classify.CellKind
}

// Row is one render-ready row: the underlying record, its cells in header
// order, and the classification the filters were computed from.
type Row struct {
	Record     dataset.Record
	Cells      []Cell
	Category   classify.DeviceCategory
	Generation classify.Generation
	Price      float64
}

// FirstReference returns the first actionable cell of the row, if any.
func (r Row) FirstReference() (Cell, bool) {
	for _, c := range r.Cells {
		if c.Kind.IsReference() {
			return c, true
		}
	}
	return Cell{}, false
}

// BuildView runs the full pipeline: filter, sort, blank-row suppression,
// and per-cell annotation. It is a pure function of its inputs; calling it
// twice with the same arguments yields the same rows.
func BuildView(ds dataset.Dataset, fields Fields, filters FilterState, order SortOrder) []Row {
	kept := Filter(ds.Records, fields.Model, filters)
	kept = Sort(kept, fields.Price, order)

	rows := make([]Row, 0, len(kept))
	for _, rec := range kept {
		if rec.IsBlank() {
			continue
		}
		cat, gen := classify.Device(rec.Get(fields.Model))
		row := Row{
			Record:     rec,
			Cells:      make([]Cell, len(ds.Headers)),
			Category:   cat,
			Generation: gen,
			Price:      classify.Price(rec.Get(fields.Price)),
		}
		for i, field := range ds.Headers {
			value := rec.Get(field)
			row.Cells[i] = Cell{Value: value, Kind: classify.Cell(value)}
		}
		rows = append(rows, row)
	}
	return rows
}

// Counts holds aggregate totals over the unfiltered dataset. They annotate
// the filter toggles and do not change as filters flip.
type Counts struct {
	Total      int
	Device     map[classify.DeviceCategory]int
	Generation map[classify.Generation]int
}

// Tally computes counts over every record: one bucket per device category,
// and generation buckets over iPhone-classified records only.
func Tally(records []dataset.Record, modelField string) Counts {
	c := Counts{
		Total:      len(records),
		Device:     make(map[classify.DeviceCategory]int, len(classify.DeviceCategories)),
		Generation: make(map[classify.Generation]int, len(classify.Generations)),
	}
	for _, rec := range records {
		cat, gen := classify.Device(rec.Get(modelField))
		c.Device[cat]++
		if cat == classify.DeviceIphone {
			c.Generation[gen]++
		}
	}
	return c
}
