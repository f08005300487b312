package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/iafilius/MSTBenchCharts/src/logging"
)

// panel draws one sub-plot into its tile.
type panel func(c draw.Canvas) error

// plotPanel adapts a plot builder to a panel. A nil plot leaves the tile blank.
func plotPanel(build func() (*plot.Plot, error)) panel {
	return func(c draw.Canvas) error {
		p, err := build()
		if err != nil {
			return err
		}
		if p != nil {
			p.Draw(c)
		}
		return nil
	}
}

// figureLayout describes one artifact: its size and a row-major grid of panels.
type figureLayout struct {
	Width, Height vg.Length
	Rows, Cols    int
	Panels        []panel
}

// figurePad is the outer margin and the gap between tiles.
const figurePad = 0.15 * vg.Inch

// figureMode is the permission of a written figure; temp files start out owner-only.
const figureMode os.FileMode = 0o644

// withFigure creates a canvas, draws into it with fn and writes it to path as PNG. The file
// is written to a temporary name and renamed into place, so a failed draw leaves no output.
func withFigure(path string, w, h vg.Length, dpi int, fn func(dc draw.Canvas) error) (err error) {
	defer logging.TimeTrack(time.Now(), "figure "+filepath.Base(path))
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	if err := fn(draw.New(c)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(tmp); err != nil {
		return fmt.Errorf("png encode %s: %w", filepath.Base(path), err)
	}
	if err = tmp.Chmod(figureMode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// renderFigure lays the panels out as tiles and saves the figure to path.
func renderFigure(path string, layout figureLayout, dpi int) error {
	if len(layout.Panels) != layout.Rows*layout.Cols {
		return fmt.Errorf("%s: %d panels for a %dx%d grid", filepath.Base(path), len(layout.Panels), layout.Rows, layout.Cols)
	}
	tiles := draw.Tiles{
		Rows: layout.Rows, Cols: layout.Cols,
		PadX: 2 * figurePad, PadY: 2 * figurePad,
		PadTop: figurePad, PadBottom: figurePad, PadLeft: figurePad, PadRight: figurePad,
	}
	return withFigure(path, layout.Width, layout.Height, dpi, func(dc draw.Canvas) error {
		for i, pn := range layout.Panels {
			if pn == nil {
				continue
			}
			if err := pn(tiles.At(dc, i%layout.Cols, i/layout.Cols)); err != nil {
				return fmt.Errorf("panel %d: %w", i+1, err)
			}
		}
		return nil
	})
}
