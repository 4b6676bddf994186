package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrend/lotview/internal/dataset"
	"github.com/mwrend/lotview/internal/view"
)

var (
	exportOut  string
	exportSort string
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Run the view pipeline and write the result to CSV",
		Long: `Export runs the same pipeline as the TUI — permissive filters, optional
price sort, blank-row suppression — and writes the resulting rows to a CSV
file for downstream tooling.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, fields, err := loadDataset(args)
			if err != nil {
				return err
			}

			order := view.SortNone
			switch exportSort {
			case "asc":
				order = view.SortAscending
			case "desc":
				order = view.SortDescending
			case "", "none":
			default:
				return fmt.Errorf("unknown sort %q (want asc, desc, or none)", exportSort)
			}

			rows := view.BuildView(ds, fields, view.NewFilterState(), order)
			records := make([]dataset.Record, len(rows))
			for i, row := range rows {
				records[i] = row.Record
			}

			if err := dataset.Export(exportOut, ds.Headers, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(records), exportOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exportOut, "out", "o", "./lotview-export.csv", "output CSV path")
	cmd.Flags().StringVar(&exportSort, "sort", "none", "price sort order (asc, desc, none)")

	return cmd
}
