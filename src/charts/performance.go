package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

// Bar widths in category units, so bars keep their share of the spacing for any number of
// categories.
const (
	groupBarWidth   = 0.35
	speedupBarWidth = 0.6
)

// renderPerformance writes the 2x2 performance overview.
func renderPerformance(table types.ResultTable, path string, dpi int) error {
	return renderFigure(path, figureLayout{
		Width: 16 * vg.Inch, Height: 12 * vg.Inch,
		Rows: 2, Cols: 2,
		Panels: []panel{
			plotPanel(func() (*plot.Plot, error) { return timeTrendPlot(table) }),
			plotPanel(func() (*plot.Plot, error) { return meanTimePlot(table) }),
			plotPanel(func() (*plot.Plot, error) { return speedupPlot(table) }),
			plotPanel(func() (*plot.Plot, error) { return meanOpsPlot(table) }),
		},
	}, dpi)
}

// xyOf pairs two metrics of each row.
func xyOf(rows []types.ResultRow, x, y analysis.Metric) plotter.XYs {
	xys := make(plotter.XYs, len(rows))
	for i, r := range rows {
		xys[i].X = x(r)
		xys[i].Y = y(r)
	}
	return xys
}

// timeTrendPlot draws Prim (solid) and Kruskal (dashed) time against vertices per category.
func timeTrendPlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Execution Time Trends", "Number of Vertices", "Time (ms)")
	p.X.Tick.Marker = niceTicker{N: 6}
	p.Y.Tick.Marker = niceTicker{N: 6}
	for _, cat := range types.Categories {
		rows := table.Filter(cat)
		if len(rows) == 0 {
			continue
		}
		col := withAlpha(categoryColor(cat), 0.8)
		for _, alg := range []struct {
			name   string
			metric analysis.Metric
			shape  draw.GlyphDrawer
			dashes []vg.Length
		}{
			{"Prim", analysis.PrimTime, draw.CircleGlyph{}, nil},
			{"Kruskal", analysis.KruskalTime, draw.SquareGlyph{}, dashed},
		} {
			l, s, err := plotter.NewLinePoints(xyOf(rows, analysis.Vertices, alg.metric))
			if err != nil {
				return nil, fmt.Errorf("%s %s trend: %w", alg.name, cat, err)
			}
			l.LineStyle = draw.LineStyle{Color: col, Width: lineWidth, Dashes: alg.dashes}
			s.GlyphStyle = draw.GlyphStyle{Color: col, Radius: vg.Points(3), Shape: alg.shape}
			p.Add(l, s)
			p.Legend.Add(fmt.Sprintf("%s %s", alg.name, cat), l, s)
		}
	}
	return p, nil
}

// barOutline returns the corners of a bar spanning [x0, x0+width] from base up to top.
func barOutline(x0, width, base, top float64) plotter.XYs {
	return plotter.XYs{{X: x0, Y: base}, {X: x0 + width, Y: base}, {X: x0 + width, Y: top}, {X: x0, Y: top}}
}

// groupedBars adds a Prim/Kruskal bar pair for each category group, each bar rising from
// base. Values at or below base are not drawn.
func groupedBars(p *plot.Plot, prim, kruskal []analysis.GroupValue, base float64) error {
	for _, s := range []struct {
		name   string
		values []analysis.GroupValue
		col    color.Color
		shift  float64
	}{
		{"Prim", prim, colorTab10Blue, -groupBarWidth},
		{"Kruskal", kruskal, colorTab10Orange, 0},
	} {
		var first *plotter.Polygon
		for i, g := range s.values {
			if g.Value <= base {
				continue
			}
			poly, err := plotter.NewPolygon(barOutline(float64(i)+s.shift, groupBarWidth, base, g.Value))
			if err != nil {
				return fmt.Errorf("%s bar %s: %w", s.name, g.Category, err)
			}
			poly.Color = withAlpha(s.col, 0.8)
			poly.LineStyle.Width = 0
			p.Add(poly)
			if first == nil {
				first = poly
			}
		}
		if first != nil {
			p.Legend.Add(s.name, first)
		}
	}
	categoryAxis(p, groupLabels(prim)...)
	return nil
}

// categoryAxis labels integer x positions with names and pads half a slot on each side.
func categoryAxis(p *plot.Plot, names ...string) {
	if len(names) == 0 {
		return
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(names)) - 0.5
}

func groupLabels(gs []analysis.GroupValue) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = string(g.Category)
	}
	return out
}

// meanTimePlot draws mean Prim and Kruskal time per category.
func meanTimePlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Average Execution Time by Category", "Category", "Time (ms)")
	p.Y.Tick.Marker = niceTicker{N: 6}
	p.Y.Min = 0
	err := groupedBars(p, analysis.GroupMeans(table, analysis.PrimTime), analysis.GroupMeans(table, analysis.KruskalTime), 0)
	return p, err
}

// errorPoints carries bar tops and symmetric error extents for YErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// speedupPlot draws the mean Kruskal/Prim time ratio per category with one-std error bars
// and a reference line at 1.
func speedupPlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Speedup Ratio (Kruskal/Prim)", "", "Speedup Ratio")
	p.Y.Tick.Marker = niceTicker{N: 6}
	stats := analysis.GroupMeanStd(analysis.SpeedupRatios(table.Rows))

	names := make([]string, len(stats))
	ep := errorPoints{XYs: make(plotter.XYs, len(stats)), YErrors: make(plotter.YErrors, len(stats))}
	for i, st := range stats {
		names[i] = string(st.Category)
		bar, err := plotter.NewPolygon(barOutline(float64(i)-speedupBarWidth/2, speedupBarWidth, 0, st.Mean))
		if err != nil {
			return nil, fmt.Errorf("speedup bar %s: %w", st.Category, err)
		}
		bar.Color = withAlpha(barCycle[i%len(barCycle)], 0.7)
		bar.LineStyle.Width = 0
		p.Add(bar)
		ep.XYs[i] = plotter.XY{X: float64(i), Y: st.Mean}
		ep.YErrors[i].Low = st.Std
		ep.YErrors[i].High = st.Std
	}
	if len(stats) > 0 {
		eb, err := plotter.NewYErrorBars(ep)
		if err != nil {
			return nil, fmt.Errorf("speedup error bars: %w", err)
		}
		eb.CapWidth = vg.Points(10)
		eb.LineStyle.Width = vg.Points(1)
		p.Add(eb)
	}

	n := math.Max(float64(len(stats)), 1)
	eq, err := refLine(-0.5, n-0.5, 1, colorBlack, lineWidth)
	if err != nil {
		return nil, err
	}
	p.Add(eq)
	p.Legend.Add("Equal Performance", eq)
	p.Legend.Left = false
	categoryAxis(p, names...)
	return p, nil
}

// meanOpsPlot draws mean operation counts per category on a log10 axis. Bars rise from the
// decade below the smallest mean since a log axis has no zero baseline.
func meanOpsPlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Average Operations Count", "Category", "Operations")
	prim := analysis.GroupMeans(table, analysis.PrimOperations)
	kruskal := analysis.GroupMeans(table, analysis.KruskalOperations)

	lo := math.Inf(1)
	for _, gs := range [][]analysis.GroupValue{prim, kruskal} {
		for _, g := range gs {
			if g.Value > 0 {
				lo = math.Min(lo, g.Value)
			}
		}
	}
	if math.IsInf(lo, 1) {
		// Nothing positive to show on a log axis; keep a linear axis.
		err := groupedBars(p, prim, kruskal, 0)
		return p, err
	}
	floor := math.Pow(10, math.Floor(math.Log10(lo)))
	if floor >= lo {
		floor /= 10
	}
	if err := groupedBars(p, prim, kruskal, floor); err != nil {
		return nil, err
	}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min = floor
	return p, nil
}
