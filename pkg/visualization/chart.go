package visualization

import (
	"image/color"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The charts keep the 1200×900 canvas of the original plot set.
const (
	CanvasWidth  = vg.Length(1200)
	CanvasHeight = vg.Length(900)
)

// legendTitle heads the per-series legends of the bar and frequency charts.
const legendTitle = "Max Wait (min)"

// seriesColor returns the palette color of series i.
func seriesColor(i int) color.Color {
	return plotutil.Color(i)
}

// swatch is a filled legend square for plotters that provide no thumbnail of
// their own.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	points := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, points)
}

// RenderAll renders the three conventional charts for a dataset into dir:
// plot_products_*.svg, plot_box_*.svg and plot_freq_*.svg.
func RenderAll(dir string, ds *Dataset) error {
	charts := []struct {
		kind  string
		build func(*Dataset) (*plot.Plot, error)
	}{
		{"products", ProductsChart},
		{"box", BoxChart},
		{"freq", FrequencyChart},
	}

	for _, chart := range charts {
		p, err := chart.build(ds)
		if err != nil {
			return errors.Wrapf(err, "could not build %s chart for config=%s strategy=%s",
				chart.kind, ds.Config, ds.Strategy)
		}
		path := filepath.Join(dir, PlotFileName(chart.kind, ds.Config, ds.Strategy))
		if err := p.Save(CanvasWidth, CanvasHeight, path); err != nil {
			return errors.Wrapf(err, "could not save %q", path)
		}
	}

	return nil
}
