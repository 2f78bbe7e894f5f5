package visualization

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DataFileName returns the conventional CSV name for one configuration and
// strategy.
func DataFileName(config, strategy string) string {
	return fmt.Sprintf("output_%s_%s.csv", config, strategy)
}

// PlotFileName returns the conventional SVG name for one chart kind
// (products, box or freq), configuration and strategy.
func PlotFileName(kind, config, strategy string) string {
	return fmt.Sprintf("plot_%s_%s_%s.svg", kind, config, strategy)
}

// Dataset holds the flow times of one (configuration, strategy) pair: one
// series per max-wait value, in minutes, indexed by product number.
type Dataset struct {
	Config   string
	Strategy string
	// Labels name the max-wait value of each series, e.g. "0", "3", "6".
	Labels []string
	Series [][]float64
}

// LoadDataset reads the conventional CSV file for a configuration and
// strategy from dir. Each row is `<product index>, <flow time>, ...` with one
// flow-time column per label.
func LoadDataset(dir, config, strategy string, labels []string) (*Dataset, error) {
	path := filepath.Join(dir, DataFileName(config, strategy))
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open flow time data")
	}
	defer file.Close()

	series := make([][]float64, len(labels))
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != len(labels)+1 {
			return nil, errors.Errorf("%s:%d: expected %d columns, got %d",
				path, lineNo, len(labels)+1, len(fields))
		}
		for i, field := range fields[1:] {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d: malformed flow time", path, lineNo)
			}
			series[i] = append(series[i], value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read %q", path)
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return nil, errors.Errorf("%s holds no flow time rows", path)
	}

	return &Dataset{
		Config:   config,
		Strategy: strategy,
		Labels:   labels,
		Series:   series,
	}, nil
}

// rows returns the number of products in the dataset.
func (d *Dataset) rows() int {
	if len(d.Series) == 0 {
		return 0
	}
	return len(d.Series[0])
}
