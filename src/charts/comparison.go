package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

// colorBarWidth is the share of a ratio tile given to its colour bar.
const colorBarWidth = 0.15

// renderComparison writes the 1x3 comparison strip: direct time scatter and the two
// ratio-vs-size scatters coloured by edge count.
func renderComparison(table types.ResultTable, path string, dpi int) error {
	return renderFigure(path, figureLayout{
		Width: 15 * vg.Inch, Height: 5 * vg.Inch,
		Rows: 1, Cols: 3,
		Panels: []panel{
			plotPanel(func() (*plot.Plot, error) { return directTimePlot(table) }),
			ratioPanel(table, "Time Ratio vs Graph Size", "Time Ratio (Kruskal/Prim)",
				analysis.TimeRatios(table.Rows), timeRatioColorMap()),
			ratioPanel(table, "Operations Ratio vs Graph Size", "Ops Ratio (Kruskal/Prim)",
				analysis.OpsRatios(table.Rows), opsRatioColorMap()),
		},
	}, dpi)
}

// directTimePlot scatters Prim time against Kruskal time, labelling each point with the
// initial of its category.
func directTimePlot(table types.ResultTable) (*plot.Plot, error) {
	p := newPlot("Direct Time Comparison", "Prim Time (ms)", "Kruskal Time (ms)")
	p.X.Tick.Marker = niceTicker{N: 6}
	p.Y.Tick.Marker = niceTicker{N: 6}

	hi := 0.0
	if table.Len() > 0 {
		hi = math.Max(floats.Max(analysis.Column(table.Rows, analysis.PrimTime)),
			floats.Max(analysis.Column(table.Rows, analysis.KruskalTime)))
	}
	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: hi, Y: hi}})
	if err != nil {
		return nil, fmt.Errorf("y=x line: %w", err)
	}
	diag.LineStyle = draw.LineStyle{Color: withAlpha(colorBlack, 0.5), Width: vg.Points(1), Dashes: dashed}
	p.Add(diag)
	p.Legend.Add("y=x", diag)

	xys := xyOf(table.Rows, analysis.PrimTime, analysis.KruskalTime)
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("time scatter: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{Color: withAlpha(colorBlue, 0.6), Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	p.Add(s)

	names := make([]string, len(table.Rows))
	for i, r := range table.Rows {
		names[i] = r.Category.Initial()
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, fmt.Errorf("time labels: %w", err)
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Font.Size = vg.Points(8)
	}
	lbl.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	p.Add(lbl)
	return p, nil
}

// ratioPanel plots ratio points against vertex count, coloured by edge count, with a
// dashed reference at 1 and a colour bar to the right.
func ratioPanel(table types.ResultTable, title, yLabel string, points []analysis.RatioPoint, cm palette.ColorMap) panel {
	return func(c draw.Canvas) error {
		edges := make([]float64, len(points))
		for i, pt := range points {
			edges[i] = float64(pt.Row.Edges)
		}
		if len(edges) == 0 {
			edges = analysis.Column(table.Rows, analysis.Edges)
		}
		lo, hi := 0.0, 1.0
		if len(edges) > 0 {
			lo, hi = floats.Min(edges), floats.Max(edges)
		}
		cm = edgeColorMap(cm, lo, hi)

		p, err := ratioScatterPlot(table, title, yLabel, points, cm)
		if err != nil {
			return err
		}
		barW := vg.Length(colorBarWidth) * c.Size().X
		area := draw.Crop(c, 0, -barW, 0, 0)
		p.Draw(area)

		dc := p.DataCanvas(area)
		bar := draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Max.X - barW, Y: dc.Min.Y},
			Max: vg.Point{X: c.Max.X, Y: dc.Max.Y},
		}}
		colorBarPlot(cm).Draw(bar)
		return nil
	}
}

func ratioScatterPlot(table types.ResultTable, title, yLabel string, points []analysis.RatioPoint, cm palette.ColorMap) (*plot.Plot, error) {
	p := newPlot(title, "Vertices", yLabel)
	p.X.Tick.Marker = niceTicker{N: 6}
	p.Y.Tick.Marker = niceTicker{N: 6}

	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: float64(pt.Row.Vertices), Y: pt.Value}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("%s scatter: %w", title, err)
		}
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			col, err := cm.At(float64(points[i].Row.Edges))
			if err != nil {
				col = colorGray
			}
			return draw.GlyphStyle{Color: withAlpha(col, 0.7), Radius: vg.Points(3.5), Shape: draw.CircleGlyph{}}
		}
		p.Add(s)
	}

	x0, x1 := 0.0, 1.0
	if table.Len() > 0 {
		vs := analysis.Column(table.Rows, analysis.Vertices)
		x0, x1 = floats.Min(vs), floats.Max(vs)
	}
	eq, err := refLine(x0, x1, 1, withAlpha(colorRed, 0.7), vg.Points(1.5))
	if err != nil {
		return nil, err
	}
	p.Add(eq)
	p.Legend.Add("Equal Performance", eq)
	p.Legend.Left = false
	return p, nil
}

// colorBarPlot returns a vertical colour bar for cm labelled with the edge count.
func colorBarPlot(cm palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Y.Label.Text = "Edges"
	p.Y.Tick.Marker = niceTicker{N: 5}
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: 255})
	return p
}
