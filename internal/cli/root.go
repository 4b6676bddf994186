package cli

import (
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mwrend/lotview/internal/app"
)

var (
	cfgFile   string
	prefsFile string
	noWatch   bool
)

// NewRootCommand creates the root command. Running it with no subcommand
// starts the TUI.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lotview [file]",
		Short: "Interactive viewer for marketplace listing CSVs",
		Long: `lotview loads a CSV of marketplace listings and presents an interactively
filterable, sortable table: device-category and iPhone-generation filters,
tri-state price sorting, and per-cell link detection.

The dataset path comes from the argument or from data_path in the config.
The file is watched and reloaded live unless --no-watch is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts := app.Options{
				ConfigPath: cfgFile,
				PrefsPath:  prefsFile,
				NoWatch:    noWatch,
			}
			if len(args) == 1 {
				opts.DataPath = args[0]
			}
			return app.Run(ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs", "", "preferences file path")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable live reload of the dataset file")

	rootCmd.AddCommand(newCountsCommand())
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lotview %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
