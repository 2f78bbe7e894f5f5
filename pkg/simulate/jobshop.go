package simulate

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Config holds the parameters of one simulation run. All durations and rates
// are in seconds.
type Config struct {
	// Seed for the generator's RNG. Runs with equal seeds and parameters
	// produce identical results.
	Seed int64
	// TargetProducts is the number of unspoiled finished products required to
	// end the run.
	TargetProducts int
	// GenerationRate is the average number of products generated per second.
	GenerationRate float64

	ProductTypes []ProductSpec
	Machines     []MachineSpec
	Strategy     Strategy

	// MaxWait bounds how long a machine holds a non-full batch before
	// processing it. Zero processes immediately.
	MaxWait float64
	// RoutingTimePerSize is the router's dispatch time per unit of product size.
	RoutingTimePerSize float64
	// ShelfTime spoils products that waited in the router queue longer than
	// this. Zero disables spoilage.
	ShelfTime float64
}

// Result is the outcome of one simulation run.
type Result struct {
	// FlowTimes of unspoiled finished products, in seconds, completion order.
	FlowTimes []float64
	// Spoiled counts products dropped from the results.
	Spoiled int
	// Duration is the simulated time at which the run ended, in seconds.
	Duration float64
	// AverageQueueLength is the time-weighted router queue length.
	AverageQueueLength float64
	Machines           []MachineStats
}

func (c Config) validate() error {
	if c.TargetProducts <= 0 {
		return errors.New("target product count must be positive")
	}
	if c.GenerationRate <= 0 {
		return errors.New("generation rate must be positive")
	}
	if c.RoutingTimePerSize < 0 || c.MaxWait < 0 || c.ShelfTime < 0 {
		return errors.New("durations must not be negative")
	}
	if len(c.ProductTypes) == 0 {
		return errors.New("at least one product type is required")
	}

	groups := map[string]int{} // max capacity per machine group
	names := map[string]bool{}
	for _, m := range c.Machines {
		if m.Name == "" {
			return errors.New("machine name must not be empty")
		}
		if names[m.Name] {
			return errors.Errorf("duplicate machine name %q", m.Name)
		}
		names[m.Name] = true
		if m.Capacity <= 0 {
			return errors.Errorf("machine %q capacity must be positive", m.Name)
		}
		group := m.Group
		if group == "" {
			group = m.Name
		}
		if m.Capacity > groups[group] {
			groups[group] = m.Capacity
		}
	}

	for _, spec := range c.ProductTypes {
		if spec.Size <= 0 {
			return errors.Errorf("product type %d size must be positive", spec.Type)
		}
		if spec.Probability <= 0 {
			return errors.Errorf("product type %d probability must be positive", spec.Type)
		}
		if len(spec.Recipe) == 0 {
			return errors.Errorf("product type %d has an empty recipe", spec.Type)
		}
		for _, group := range spec.Recipe {
			capacity, ok := groups[group]
			if !ok {
				return errors.Errorf("product type %d requires machine group %q which has no machines",
					spec.Type, group)
			}
			if spec.Size > capacity {
				return errors.Errorf("product type %d (size %d) does not fit any machine of group %q",
					spec.Type, spec.Size, group)
			}
			if _, ok := spec.ProcessingTimes[group]; !ok {
				return errors.Errorf("product type %d has no processing time for group %q",
					spec.Type, group)
			}
		}
	}

	return nil
}

// collectFlowTimes splits collected products into the flow times of the
// unspoiled ones, in collection order, and a spoiled count.
func collectFlowTimes(products []*Product) ([]float64, int) {
	var flowTimes []float64
	spoiled := 0
	for _, p := range products {
		if p.Spoiled {
			spoiled++
			continue
		}
		flowTimes = append(flowTimes, p.FlowTime)
	}
	return flowTimes, spoiled
}

// Run executes one simulation to completion and returns its result.
func Run(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation config")
	}

	k := &kernel{}
	snk := &sink{k: k, target: cfg.TargetProducts}
	rt := newRouter(k, cfg.Strategy, cfg.RoutingTimePerSize, cfg.ShelfTime, snk)

	machines := make([]*machine, 0, len(cfg.Machines))
	for _, spec := range cfg.Machines {
		m := newMachine(k, spec, cfg.MaxWait, rt)
		machines = append(machines, m)
		rt.addMachine(m)
	}

	gen := &generator{
		k:     k,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		rate:  cfg.GenerationRate,
		specs: cfg.ProductTypes,
		out:   rt,
	}
	gen.start()
	k.run()

	result := &Result{
		Duration:           k.now,
		AverageQueueLength: rt.averageQueueLength(k.now),
	}
	result.FlowTimes, result.Spoiled = collectFlowTimes(snk.products)
	for _, m := range machines {
		result.Machines = append(result.Machines, m.stats(k.now))
	}

	return result, nil
}
