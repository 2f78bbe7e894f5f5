package visualization

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ProductsChart builds the per-product bar chart: one bar per product on the
// x-axis, flow time in minutes on the y-axis, series per max-wait overlaid.
func ProductsChart(ds *Dataset) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Flow Time (config=%s, strategy=%s)", ds.Config, ds.Strategy)
	p.X.Label.Text = "Product #"
	p.Y.Label.Text = "Minutes"
	p.X.Min = 0
	p.X.Max = float64(ds.rows())

	// Bars narrow enough that all products fit the canvas.
	barWidth := CanvasWidth / vg.Length(ds.rows()+1)

	p.Legend.Add(legendTitle)
	for i, series := range ds.Series {
		bars, err := plotter.NewBarChart(plotter.Values(series), barWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "could not build bar series %q", ds.Labels[i])
		}
		bars.LineStyle.Width = 0
		bars.Color = seriesColor(i)
		p.Add(bars)
		p.Legend.Add(ds.Labels[i], bars)
	}
	p.Legend.Top = false

	return p, nil
}
