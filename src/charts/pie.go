package charts

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/MSTBenchCharts/src/analysis"
	"github.com/iafilius/MSTBenchCharts/src/logging"
)

const winsTitle = "Algorithm Performance Wins"

var (
	pieLightBlue  = drawing.ColorFromHex("ADD8E6")
	pieLightCoral = drawing.ColorFromHex("F08080")
	pieLightGray  = drawing.ColorFromHex("D3D3D3")
)

// winSlices returns one labelled slice per non-zero outcome, in Prim, Kruskal, Ties order.
func winSlices(w analysis.Wins) []chart.Value {
	total := w.Total()
	var out []chart.Value
	for _, s := range []struct {
		name  string
		n     int
		color drawing.Color
	}{
		{"Prim Wins", w.Prim, pieLightBlue},
		{"Kruskal Wins", w.Kruskal, pieLightCoral},
		{"Ties", w.Ties, pieLightGray},
	} {
		if s.n == 0 {
			continue
		}
		out = append(out, chart.Value{
			Label: fmt.Sprintf("%s: %d (%.1f%%)", s.name, s.n, 100*float64(s.n)/float64(total)),
			Value: float64(s.n),
			Style: chart.Style{
				FillColor:   s.color,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorBlack,
				FontSize:    10,
			},
		})
	}
	return out
}

// fullSlice fills the whole pie for a single outcome and centres its label. The pie chart
// itself only outlines the circle in that case.
func fullSlice(v chart.Value) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		cx, cy := box.Center()
		radius := float64(chart.MinInt(box.Width(), box.Height()) >> 1)
		v.Style.InheritFrom(defaults).WriteToRenderer(r)
		r.Circle(radius, cx, cy)
		r.FillStroke()
		tb := r.MeasureText(v.Label)
		r.Text(v.Label, cx-tb.Width()/2, cy+tb.Height()/2)
	}
}

// winsPiePanel draws the win-count pie with go-chart and places the bitmap in the tile
// below a title drawn in the figure's own font.
func winsPiePanel(w analysis.Wins, dpi int) panel {
	return func(c draw.Canvas) error {
		title := plot.New().Title.TextStyle
		title.Font.Size = vg.Points(12)
		title.XAlign = text.XCenter
		title.YAlign = text.YTop
		c.FillText(title, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y}, winsTitle)

		slices := winSlices(w)
		if len(slices) == 0 {
			logging.Warnf("wins pie: no rows to count; panel left empty")
			return nil
		}
		area := draw.Crop(c, 0, 0, 0, -(title.Height(winsTitle) + vg.Points(6)))
		width := int(area.Size().X.Dots(float64(dpi)))
		height := int(area.Size().Y.Dots(float64(dpi)))
		if width < 1 || height < 1 {
			return fmt.Errorf("wins pie: tile too small (%dx%d px)", width, height)
		}

		pie := chart.PieChart{
			Width:      width,
			Height:     height,
			DPI:        float64(dpi),
			Background: chart.Style{Padding: chart.Box{Top: 4, Left: 4, Right: 4, Bottom: 4}},
			Values:     slices,
		}
		if len(slices) == 1 {
			pie.Elements = []chart.Renderable{fullSlice(slices[0])}
		}

		var buf bytes.Buffer
		if err := pie.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("wins pie: %w", err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("wins pie decode: %w", err)
		}
		area.DrawImage(area.Rectangle, img)
		return nil
	}
}
