package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a CSV file into a Dataset. The first row is the header and
// defines the field set and column order for every record. Ragged rows are
// tolerated: short rows pad missing fields with "", long rows drop the
// extras. A file with only a header (or nothing at all) yields an empty
// dataset, which is a valid state.
func Load(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Read(file)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV from r into a Dataset.
func Read(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Dataset{}, nil
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("parse header: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	ds := Dataset{Headers: headers}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("parse row %d: %w", len(ds.Records)+2, err)
		}

		rec := make(Record, len(headers))
		for i, field := range headers {
			if i < len(row) {
				rec[field] = row[i]
			} else {
				rec[field] = ""
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}
