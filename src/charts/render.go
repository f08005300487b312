// Package charts renders the benchmark result table into three PNG overviews:
// performance_analysis.png, trend_analysis.png and comparison_analysis.png.
//
// Each figure is drawn on its own canvas, written to a temporary file and renamed into
// place, so no canvas outlives the render call and a failed figure leaves no file behind.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/logging"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

// Output file names, relative to Options.Dir.
const (
	PerformanceFile = "performance_analysis.png"
	TrendFile       = "trend_analysis.png"
	ComparisonFile  = "comparison_analysis.png"
)

// Options controls where the figures go and at which resolution.
type Options struct {
	Dir string // output directory, also the directory the summaries are read from
	DPI int
}

// DefaultOptions writes 300 DPI figures next to the summaries in results/.
func DefaultOptions() Options {
	return Options{Dir: analysis.DefaultResultsDir, DPI: 300}
}

// RenderAll writes the performance, trend and comparison figures in that order. It stops
// at the first figure that fails; figures already written are left in place.
func RenderAll(table types.ResultTable, opts Options) error {
	if table.Len() == 0 {
		return analysis.ErrNoData
	}
	if opts.DPI <= 0 {
		return fmt.Errorf("invalid dpi %d", opts.DPI)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	defer logging.TimeTrack(time.Now(), "render all")

	toRender := []struct {
		name string
		fn   func(types.ResultTable, string, int) error
	}{
		{PerformanceFile, renderPerformance},
		{TrendFile, renderTrends},
		{ComparisonFile, renderComparison},
	}
	for _, item := range toRender {
		outPath := filepath.Join(opts.Dir, item.name)
		if err := item.fn(table, outPath, opts.DPI); err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		logging.Infof("wrote %s", outPath)
	}
	return nil
}
