package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Export writes records to a CSV file in header order, creating
// intermediate directories as needed. Used to persist the currently
// visible (filtered/sorted) view for downstream tooling.
func Export(path string, headers []string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(headers))
	for _, rec := range records {
		for i, field := range headers {
			row[i] = rec.Get(field)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
