package visualization

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxChart builds the flow time distribution chart: one box plot per max-wait
// value, against nominal x-axis ticks labelled with the max-wait minutes.
func BoxChart(ds *Dataset) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Flow Time Distribution (config=%s, strategy=%s)",
		ds.Config, ds.Strategy)
	p.X.Label.Text = "Max Wait (minutes)"
	p.Y.Label.Text = "Minutes"

	for i, series := range ds.Series {
		box, err := plotter.NewBoxPlot(vg.Points(60), float64(i), plotter.Values(series))
		if err != nil {
			return nil, errors.Wrapf(err, "could not build box plot %q", ds.Labels[i])
		}
		box.FillColor = seriesColor(i)
		p.Add(box)
	}
	p.NominalX(ds.Labels...)

	return p, nil
}
