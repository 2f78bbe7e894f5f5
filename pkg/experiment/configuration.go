package experiment

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jobshop-sim/jobshop/pkg/simulate"
)

// Configuration names one shop setup the experiment can sweep.
type Configuration struct {
	Name         string
	Machines     []simulate.MachineSpec
	ProductTypes []simulate.ProductSpec
}

// productTypes returns the two product types of the shop. Processing times
// are divided by speed; the double-speed configuration passes 2.
func productTypes(speed float64) []simulate.ProductSpec {
	return []simulate.ProductSpec{
		{
			Type:   0,
			Size:   1,
			Recipe: []string{"A", "B"},
			ProcessingTimes: map[string]float64{
				"A": 15 * 60 / speed,
				"B": 10 * 60 / speed,
			},
			Probability: 2.0 / 3.0,
		},
		{
			Type:   1,
			Size:   2,
			Recipe: []string{"B", "A"},
			ProcessingTimes: map[string]float64{
				"A": 20 * 60 / speed,
				"B": 13 * 60 / speed,
			},
			Probability: 1.0 / 3.0,
		},
	}
}

// DefaultConfigurations returns the four shop configurations the experiment
// sweeps: the baseline shop, the baseline with a second machine per group,
// doubled machine capacities, and doubled machine speeds.
func DefaultConfigurations() []Configuration {
	return []Configuration{
		{
			Name: "baseline",
			Machines: []simulate.MachineSpec{
				{Name: "A", Capacity: 3},
				{Name: "B", Capacity: 2},
			},
			ProductTypes: productTypes(1),
		},
		{
			Name: "add-new-machines",
			Machines: []simulate.MachineSpec{
				{Name: "A", Capacity: 3},
				{Name: "B", Capacity: 2},
				{Name: "A_new", Group: "A", Capacity: 3},
				{Name: "B_new", Group: "B", Capacity: 2},
			},
			ProductTypes: productTypes(1),
		},
		{
			Name: "double-capacity",
			Machines: []simulate.MachineSpec{
				{Name: "A", Capacity: 6},
				{Name: "B", Capacity: 4},
			},
			ProductTypes: productTypes(1),
		},
		{
			Name: "double-speed",
			Machines: []simulate.MachineSpec{
				{Name: "A", Capacity: 3},
				{Name: "B", Capacity: 2},
			},
			ProductTypes: productTypes(2),
		},
	}
}

// ConfigurationByName finds one of the default configurations.
func ConfigurationByName(name string) (Configuration, error) {
	for _, config := range DefaultConfigurations() {
		if config.Name == name {
			return config, nil
		}
	}
	return Configuration{}, errors.Errorf("unknown configuration %q", name)
}

// DefaultStrategies returns the dispatching strategies the experiment sweeps.
func DefaultStrategies() []simulate.Strategy {
	return []simulate.Strategy{simulate.StrategyFIFO, simulate.StrategyPriority}
}

// DefaultMaxWaits returns the machine max-wait values the experiment sweeps;
// each becomes one CSV column.
func DefaultMaxWaits() []time.Duration {
	return []time.Duration{0, 3 * time.Minute, 6 * time.Minute}
}
