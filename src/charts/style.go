package charts

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/MSTBenchCharts/src/types"
)

var (
	colorGreen      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorBlue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorOrange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorRed        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorBlack      = color.RGBA{A: 255}
	colorGray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colorLightCoral = color.RGBA{R: 240, G: 128, B: 128, A: 255}
	colorLightGray  = color.RGBA{R: 211, G: 211, B: 211, A: 255}

	// Default matplotlib cycle, used for the two algorithms in grouped bars.
	colorTab10Blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorTab10Orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

var categoryColors = map[types.Category]color.Color{
	types.Small:      colorGreen,
	types.Medium:     colorBlue,
	types.Large:      colorOrange,
	types.ExtraLarge: colorRed,
}

// barCycle colours per-category bars by position, not by category.
var barCycle = []color.Color{colorGreen, colorBlue, colorOrange, colorRed}

func categoryColor(c types.Category) color.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return colorGray
}

// withAlpha returns c with its opacity scaled to a (0..1).
func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

var (
	dashed    = []vg.Length{vg.Points(6), vg.Points(3)}
	lineWidth = vg.Points(2)
)

// newPlot returns a plot with a bold title, axis labels, a light grid and the legend in the
// upper left corner.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = withAlpha(colorGray, 0.3)
	grid.Horizontal.Color = withAlpha(colorGray, 0.3)
	p.Add(grid)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter
	return p
}

// refLine returns a dashed horizontal line at y spanning [x0, x1].
func refLine(x0, x1, y float64, col color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil {
		return nil, err
	}
	l.LineStyle = draw.LineStyle{Color: col, Width: width, Dashes: dashed}
	return l, nil
}

// edgeColorMap returns a sequential colour map scaled to [lo, hi]. Equal bounds are widened
// so that every value still maps to a colour.
func edgeColorMap(cm palette.ColorMap, lo, hi float64) palette.ColorMap {
	if hi <= lo {
		hi = lo + 1
	}
	cm.SetMin(lo)
	cm.SetMax(hi)
	return cm
}

// Colour maps for the two colour-by-edges scatters.
func timeRatioColorMap() palette.ColorMap { return moreland.ExtendedKindlmann() }
func opsRatioColorMap() palette.ColorMap  { return moreland.ExtendedBlackBody() }

// plainTitle switches the plot title to a regular-weight, smaller face.
func plainTitle(p *plot.Plot) {
	p.Title.TextStyle.Font.Weight = xfont.WeightNormal
	p.Title.TextStyle.Font.Size = vg.Points(12)
}
