package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/logging"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

const (
	trendDegree  = 2
	trendSamples = 100
	histBins     = 10
)

// renderTrends writes the 2x2 trend overview: fitted scatter, histograms, box plots, wins.
func renderTrends(table types.ResultTable, path string, dpi int) error {
	return renderFigure(path, figureLayout{
		Width: 14 * vg.Inch, Height: 10 * vg.Inch,
		Rows: 2, Cols: 2,
		Panels: []panel{
			plotPanel(func() (*plot.Plot, error) { return fittedScatterPlot(table) }),
			plotPanel(func() (*plot.Plot, error) { return timeHistogramPlot(table) }),
			plotPanel(func() (*plot.Plot, error) { return categoryBoxPlot(table) }),
			winsPiePanel(analysis.CountWins(table.Rows), dpi),
		},
	}, dpi)
}

type algorithmStyle struct {
	name   string
	metric analysis.Metric
	col    color.Color
	shape  draw.GlyphDrawer
}

var algorithms = []algorithmStyle{
	{"Prim", analysis.PrimTime, colorBlue, draw.CircleGlyph{}},
	{"Kruskal", analysis.KruskalTime, colorRed, draw.SquareGlyph{}},
}

// fittedScatterPlot scatters time against vertices for both algorithms with a degree-2
// least-squares trend curve each.
func fittedScatterPlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Execution Time Trends with Polynomial Fit", "Vertices", "Time (ms)")
	plainTitle(p)
	p.X.Tick.Marker = niceTicker{N: 6}
	p.Y.Tick.Marker = niceTicker{N: 6}
	xs := analysis.Column(table.Rows, analysis.Vertices)
	for _, alg := range algorithms {
		s, err := plotter.NewScatter(xyOf(table.Rows, analysis.Vertices, alg.metric))
		if err != nil {
			return nil, fmt.Errorf("%s scatter: %w", alg.name, err)
		}
		s.GlyphStyle = draw.GlyphStyle{Color: withAlpha(alg.col, 0.6), Radius: vg.Points(3.5), Shape: alg.shape}
		p.Add(s)
		p.Legend.Add(alg.name, s)

		if len(xs) < 2 {
			continue
		}
		cx, cy, err := analysis.TrendCurve(xs, analysis.Column(table.Rows, alg.metric), trendDegree, trendSamples)
		if errors.Is(err, analysis.ErrDegenerateFit) {
			logging.Warnf("%s trend: %v; curve skipped", alg.name, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s trend: %w", alg.name, err)
		}
		curve := make(plotter.XYs, len(cx))
		for i := range cx {
			curve[i] = plotter.XY{X: cx[i], Y: cy[i]}
		}
		l, err := plotter.NewLine(curve)
		if err != nil {
			return nil, fmt.Errorf("%s trend line: %w", alg.name, err)
		}
		l.LineStyle = draw.LineStyle{Color: withAlpha(alg.col, 0.8), Width: lineWidth}
		p.Add(l)
	}
	return p, nil
}

// timeHistogramPlot overlays 10-bin histograms of Prim and Kruskal times.
func timeHistogramPlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Time Distribution", "Time (ms)", "Frequency")
	plainTitle(p)
	p.X.Tick.Marker = niceTicker{N: 6}
	p.Y.Tick.Marker = niceTicker{N: 6}
	for _, alg := range algorithms {
		h, err := plotter.NewHist(plotter.Values(analysis.Column(table.Rows, alg.metric)), histBins)
		if err != nil {
			return nil, fmt.Errorf("%s histogram: %w", alg.name, err)
		}
		h.FillColor = withAlpha(alg.col, 0.7)
		h.LineStyle.Width = 0
		p.Add(h)
		p.Legend.Add(alg.name, h)
	}
	return p, nil
}

// categoryBoxPlot draws one box per (category, algorithm) pair with data. With no known
// category present the panel is an empty axes.
func categoryBoxPlot(table types.ResultTable) (*plot.Plot, error) {
	var labels []string
	var boxes []plot.Plotter
	for _, cat := range types.Categories {
		rows := table.Filter(cat)
		if len(rows) == 0 {
			continue
		}
		for i, alg := range algorithms {
			b, err := plotter.NewBoxPlot(vg.Points(24), float64(len(boxes)), plotter.Values(analysis.Column(rows, alg.metric)))
			if err != nil {
				return nil, fmt.Errorf("%s %s box: %w", cat, alg.name, err)
			}
			b.FillColor = []color.Color{colorLightBlue, colorLightCoral}[i]
			boxes = append(boxes, b)
			labels = append(labels, fmt.Sprintf("%s\n%s", cat, alg.name))
		}
	}
	if len(boxes) == 0 {
		return plot.New(), nil
	}

	p := newPlot("Time Distribution by Category", "", "")
	plainTitle(p)
	p.Y.Tick.Marker = niceTicker{N: 6}
	p.Add(boxes...)
	categoryAxis(p, labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YTop
	return p, nil
}
