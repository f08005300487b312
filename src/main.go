// MST benchmark chart generator.
//
// Reads results/<category>_summary.csv (one row per benchmarked graph, as written by the
// Prim/Kruskal benchmark runs), merges them into one table and writes three PNG overviews
// back into results/:
//   - performance_analysis.png: time trends, mean times, speedup ratio, mean operation counts
//   - trend_analysis.png: fitted scatter, time histograms, per-category box plots, win counts
//   - comparison_analysis.png: Prim vs Kruskal time, time and operation ratios against size
//
// The command takes no arguments or flags. A missing results directory or no summary files is
// reported and ends the run without an error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/charts"
	"github.com/iafilius/MSTBenchCharts/src/logging"
)

var exit = os.Exit

var rootCmd = &cobra.Command{
	Use:           "mstcharts",
	Short:         "Render Prim vs Kruskal benchmark charts from results/*_summary.csv",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(charts.DefaultOptions())
	},
}

// run aggregates the summaries in opts.Dir and renders all figures into the same directory.
func run(opts charts.Options) error {
	logging.Progressf("=== Generating Performance Charts ===")
	table, err := analysis.Aggregate(opts.Dir)
	if errors.Is(err, analysis.ErrNoData) {
		logging.Progressf("No CSV files found in %s/ directory!", opts.Dir)
		return nil
	}
	if err != nil {
		return err
	}
	if err := charts.RenderAll(table, opts); err != nil {
		return err
	}
	logging.Progressf("\nAll charts generated successfully!")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
