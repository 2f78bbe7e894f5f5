package visualization

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Table is a model for tabular terminal output.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates a new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// Draw renders the table with headers and data rows to the writer.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	for _, row := range t.data {
		output.Append(row)
	}
	output.Render()
}

// SummaryTable computes descriptive flow time statistics per max-wait series
// of a dataset.
func SummaryTable(ds *Dataset) (*Table, error) {
	headers := []string{"Max Wait (min)", "Products", "Mean", "Median", "P90", "Min", "Max"}

	var data [][]string
	for i, series := range ds.Series {
		sample := stats.Float64Data(series)

		mean, err := sample.Mean()
		if err != nil {
			return nil, errors.Wrapf(err, "no statistics for series %q", ds.Labels[i])
		}
		median, err := sample.Median()
		if err != nil {
			return nil, errors.Wrapf(err, "no statistics for series %q", ds.Labels[i])
		}
		p90, err := sample.Percentile(90)
		if err != nil {
			return nil, errors.Wrapf(err, "no statistics for series %q", ds.Labels[i])
		}
		minimum, err := sample.Min()
		if err != nil {
			return nil, errors.Wrapf(err, "no statistics for series %q", ds.Labels[i])
		}
		maximum, err := sample.Max()
		if err != nil {
			return nil, errors.Wrapf(err, "no statistics for series %q", ds.Labels[i])
		}

		data = append(data, []string{
			ds.Labels[i],
			fmt.Sprintf("%d", len(series)),
			fmt.Sprintf("%.2f", mean),
			fmt.Sprintf("%.2f", median),
			fmt.Sprintf("%.2f", p90),
			fmt.Sprintf("%.2f", minimum),
			fmt.Sprintf("%.2f", maximum),
		})
	}

	return NewTable(headers, data), nil
}
