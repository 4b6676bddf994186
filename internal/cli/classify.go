package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrend/lotview/internal/classify"
)

// priceTag finds a currency-marked amount inside free text. Unlike the
// dedicated price column, a title can carry unrelated digit runs (model
// numbers, storage sizes), so only an explicit $ amount counts here.
var priceTag = regexp.MustCompile(`\$\s*\d[\d,]*(?:\.\d+)?`)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify a single listing title",
		Long: `Classify runs the engine's heuristics over one listing title and prints
the derived device category, iPhone generation, storage, condition grade,
and extracted price. Handy for checking how a title will bucket before it
lands in the dataset.

Example:
  lotview classify "iPhone 15 Pro 256GB open box $650"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			cat, gen := classify.Device(text)
			fmt.Fprintf(out, "category:   %s\n", cat)
			if cat == classify.DeviceIphone {
				fmt.Fprintf(out, "generation: %s\n", gen)
			}
			if storage := classify.Storage(text); storage != "" {
				fmt.Fprintf(out, "storage:    %s\n", storage)
			}
			if grade := classify.Grade(text); grade != "" {
				fmt.Fprintf(out, "grade:      %s\n", grade)
			}
			if tag := priceTag.FindString(text); tag != "" {
				fmt.Fprintf(out, "price:      %.2f\n", classify.Price(tag))
			}
		},
	}
}
