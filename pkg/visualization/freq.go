package visualization

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// binWidthMinutes is the flow time interval of one histogram bar.
const binWidthMinutes = 5.0

// FrequencyChart builds the binned frequency histogram: number of products
// per 5-minute flow time interval, one series per max-wait value.
func FrequencyChart(ds *Dataset) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frequency of flow times (config=%s, strategy=%s)",
		ds.Config, ds.Strategy)
	p.X.Label.Text = "Flow Time (minutes, interval)"
	p.Y.Label.Text = "Number of products"
	p.X.Min = 0

	p.Legend.Add(legendTitle)
	for i, series := range ds.Series {
		hist, err := frequencyHistogram(series)
		if err != nil {
			return nil, errors.Wrapf(err, "could not bin series %q", ds.Labels[i])
		}
		hist.FillColor = seriesColor(i)
		p.Add(hist)
		p.Legend.Add(ds.Labels[i], swatch{seriesColor(i)})
	}
	p.Legend.Top = false

	return p, nil
}

// frequencyHistogram bins flow times into fixed 5-minute intervals anchored
// at zero. Two zero-weight anchor points pin the bin edges to multiples of
// the bin width regardless of the data range.
func frequencyHistogram(series []float64) (*plotter.Histogram, error) {
	maxValue := 0.0
	for _, v := range series {
		if v > maxValue {
			maxValue = v
		}
	}
	bins := int(math.Ceil(maxValue / binWidthMinutes))
	if bins == 0 {
		bins = 1
	}

	points := make(plotter.XYs, 0, len(series)+2)
	for _, v := range series {
		points = append(points, plotter.XY{X: v, Y: 1})
	}
	points = append(points,
		plotter.XY{X: 0, Y: 0},
		plotter.XY{X: float64(bins) * binWidthMinutes, Y: 0})

	return plotter.NewHistogram(points, bins)
}
