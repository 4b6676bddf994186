package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/config"
	"github.com/mwrend/lotview/internal/dataset"
	"github.com/mwrend/lotview/internal/view"
)

func newCountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "counts [file]",
		Short: "Print aggregate device and generation counts",
		Long: `Counts classifies every record of the dataset and prints the totals the
TUI shows on its filter toggles: one bucket per device category, and
iPhone-generation buckets over iPhone-classified records.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, fields, err := loadDataset(args)
			if err != nil {
				return err
			}

			counts := view.Tally(ds.Records, fields.Model)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "records: %d\n\n", counts.Total)
			for _, c := range classify.DeviceCategories {
				fmt.Fprintf(out, "%-8s %d\n", c, counts.Device[c])
			}
			fmt.Fprintln(out)
			for _, g := range classify.Generations {
				fmt.Fprintf(out, "iPhone %-8s %d\n", g, counts.Generation[g])
			}
			return nil
		},
	}
}

// loadDataset resolves the dataset path from the argument or config and
// loads it. Shared by the non-TUI subcommands.
func loadDataset(args []string) (dataset.Dataset, view.Fields, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return dataset.Dataset{}, view.Fields{}, err
	}

	path := cfg.DataPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return dataset.Dataset{}, view.Fields{}, fmt.Errorf("no dataset: pass a CSV path or set data_path in the config")
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return dataset.Dataset{}, view.Fields{}, err
	}
	return ds, view.Fields{Model: cfg.ModelField, Price: cfg.PriceField}, nil
}
