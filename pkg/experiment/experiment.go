// Package experiment drives flow-time experiment sweeps: it runs one
// simulation per (configuration, strategy, max-wait) combination, writes the
// conventional CSV files and invokes the rendering layer.
package experiment

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/jobshop-sim/jobshop/pkg/conf"
	"github.com/jobshop-sim/jobshop/pkg/simulate"
	"github.com/jobshop-sim/jobshop/pkg/utils/fs"
	"github.com/jobshop-sim/jobshop/pkg/utils/uuid"
	"github.com/jobshop-sim/jobshop/pkg/visualization"
)

// Settings holds everything one experiment invocation needs.
type Settings struct {
	OutputDir string
	// DataDir points at existing CSV files when PlotsOnly is set.
	DataDir      string
	PlotsOnly    bool
	PrintSummary bool

	TargetProducts     int
	GenerationInterval time.Duration
	Seed               int64
	RoutingTimePerSize time.Duration
	ShelfTime          time.Duration

	MaxWaits       []time.Duration
	Configurations []Configuration
	Strategies     []simulate.Strategy
}

// maxWaitLabels formats the max-wait values the way the chart legends and
// statistics tables show them.
func (s Settings) maxWaitLabels() []string {
	labels := make([]string, 0, len(s.MaxWaits))
	for _, maxWait := range s.MaxWaits {
		labels = append(labels, strconv.FormatFloat(maxWait.Minutes(), 'f', -1, 64))
	}
	return labels
}

// Experiment is one run of the sweep, with its own id and run directory.
type Experiment struct {
	ID       string
	Dir      string
	settings Settings
	metadata *Metadata
	logFile  *os.File
}

// New prepares an experiment run: it creates the run directory, points the
// logger at both stderr and the master log, and records run metadata.
func New(settings Settings) (*Experiment, error) {
	if len(settings.Configurations) == 0 || len(settings.Strategies) == 0 ||
		len(settings.MaxWaits) == 0 {
		return nil, errors.New("nothing to sweep: configurations, strategies and max waits must not be empty")
	}

	id := uuid.New()
	dir, logFile, err := fs.CreateExperimentDir(settings.OutputDir, id)
	if err != nil {
		return nil, err
	}

	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
	logrus.Info("Starting experiment ", conf.AppName(), " with id ", id)

	metadata := NewMetadata(id, dir)
	metadata.RecordFlags()
	metadata.RecordPlatform()

	return &Experiment{
		ID:       id,
		Dir:      dir,
		settings: settings,
		metadata: metadata,
		logFile:  logFile,
	}, nil
}

// Finalize persists the run metadata and releases the master log.
func (e *Experiment) Finalize() {
	if err := e.metadata.Save(); err != nil {
		logrus.Errorf("%v", err)
	}
	logrus.SetOutput(os.Stderr)
	e.logFile.Close()
}

// Run executes the whole sweep. One CSV file and three SVG charts are
// produced per (configuration, strategy) pair.
func (e *Experiment) Run() error {
	var bar *pb.ProgressBar
	total := len(e.settings.Configurations) * len(e.settings.Strategies) * len(e.settings.MaxWaits)
	if conf.LogLevel() == logrus.ErrorLevel {
		bar = pb.StartNew(total)
		bar.ShowCounters = false
		bar.ShowTimeLeft = true
		defer bar.Finish()
	}

	for _, config := range e.settings.Configurations {
		for _, strategy := range e.settings.Strategies {
			dataset, err := e.runSweepCell(config, strategy, bar)
			if err != nil {
				return err
			}
			if err := e.render(dataset); err != nil {
				return err
			}
		}
	}

	return nil
}

// runSweepCell simulates one (configuration, strategy) pair across all
// max-wait values and writes its CSV file.
func (e *Experiment) runSweepCell(config Configuration, strategy simulate.Strategy,
	bar *pb.ProgressBar) (*visualization.Dataset, error) {

	columns := make([][]float64, 0, len(e.settings.MaxWaits))
	for _, maxWait := range e.settings.MaxWaits {
		logrus.Infof("Run simulation: config=%s, strategy=%s, max_wait=%.1fmin",
			config.Name, strategy, maxWait.Minutes())

		result, err := simulate.Run(simulate.Config{
			Seed:               e.settings.Seed,
			TargetProducts:     e.settings.TargetProducts,
			GenerationRate:     1.0 / e.settings.GenerationInterval.Seconds(),
			ProductTypes:       config.ProductTypes,
			Machines:           config.Machines,
			Strategy:           strategy,
			MaxWait:            maxWait.Seconds(),
			RoutingTimePerSize: e.settings.RoutingTimePerSize.Seconds(),
			ShelfTime:          e.settings.ShelfTime.Seconds(),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "simulation failed for config=%s strategy=%s max_wait=%s",
				config.Name, strategy, maxWait)
		}

		for _, machineStats := range result.Machines {
			logrus.Infof("  Machine %s: Utilization=%.1f%%, Avg Occupancy=%.2f, Batches=%d",
				machineStats.Name, machineStats.Utilization*100,
				machineStats.AverageOccupancy, machineStats.Batches)
		}
		logrus.Infof("  Router: Avg Queue Length=%.2f", result.AverageQueueLength)
		if result.Spoiled > 0 {
			logrus.Infof("  Spoiled products: %d", result.Spoiled)
		}

		columns = append(columns, toMinutes(result.FlowTimes))
		if bar != nil {
			bar.Increment()
		}
	}

	path := filepath.Join(e.Dir, visualization.DataFileName(config.Name, strategy.String()))
	if err := WriteFlowTimes(path, columns, e.settings.TargetProducts); err != nil {
		return nil, err
	}

	// Charts show exactly the rows that went into the CSV.
	trimmed := make([][]float64, len(columns))
	for i, column := range columns {
		trimmed[i] = column[:e.settings.TargetProducts]
	}

	return &visualization.Dataset{
		Config:   config.Name,
		Strategy: strategy.String(),
		Labels:   e.settings.maxWaitLabels(),
		Series:   trimmed,
	}, nil
}

// render writes the three charts for a dataset and optionally prints its
// statistics table.
func (e *Experiment) render(dataset *visualization.Dataset) error {
	if err := visualization.RenderAll(e.Dir, dataset); err != nil {
		return err
	}
	if e.settings.PrintSummary {
		table, err := visualization.SummaryTable(dataset)
		if err != nil {
			return err
		}
		logrus.Debugf("Flow time statistics for config=%s strategy=%s",
			dataset.Config, dataset.Strategy)
		table.Draw(os.Stdout)
	}
	return nil
}

// RenderExisting renders charts for CSV files already present in dir, without
// running any simulation.
func RenderExisting(dir string, settings Settings) error {
	labels := settings.maxWaitLabels()
	for _, config := range settings.Configurations {
		for _, strategy := range settings.Strategies {
			dataset, err := visualization.LoadDataset(dir, config.Name, strategy.String(), labels)
			if err != nil {
				return err
			}
			if err := visualization.RenderAll(dir, dataset); err != nil {
				return err
			}
			if settings.PrintSummary {
				table, err := visualization.SummaryTable(dataset)
				if err != nil {
					return err
				}
				table.Draw(os.Stdout)
			}
		}
	}
	return nil
}

// toMinutes converts flow times from simulation seconds to chart minutes.
func toMinutes(seconds []float64) []float64 {
	minutes := make([]float64, len(seconds))
	for i, v := range seconds {
		minutes[i] = v / 60.0
	}
	return minutes
}
