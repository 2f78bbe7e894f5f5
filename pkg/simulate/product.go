package simulate

// ProductSpec describes one product type the generator can emit.
type ProductSpec struct {
	// Type identifies the product type; one machine batch only ever holds a
	// single type.
	Type int
	// Size in capacity units. Larger products take longer to route and fill
	// more of a machine's batch.
	Size int
	// Recipe is the ordered list of machine groups the product must visit.
	Recipe []string
	// ProcessingTimes holds the batch duration in seconds per machine group.
	ProcessingTimes map[string]float64
	// Probability of the generator picking this type for the next product.
	Probability float64
}

// Product is one unit flowing through the shop.
type Product struct {
	Type            int
	Size            int
	Recipe          []string
	ProcessingTimes map[string]float64

	// ArrivalTime is the simulation time the product entered the system.
	ArrivalTime float64
	// CurrentStep indexes the next recipe entry still to be performed.
	CurrentStep int
	// FlowTime is set by the sink: completion time minus arrival time.
	FlowTime float64

	// RouterEntryTime is the time the product last joined the router queue.
	RouterEntryTime float64
	// QueueWait is the total time spent waiting in the router queue, summed
	// across requeues. Time spent being routed does not count.
	QueueWait float64
	// Spoiled marks products whose QueueWait exceeded the configured shelf
	// time. They still flow through but are excluded from results.
	Spoiled bool
}

func newProduct(spec ProductSpec, now float64) *Product {
	return &Product{
		Type:            spec.Type,
		Size:            spec.Size,
		Recipe:          spec.Recipe,
		ProcessingTimes: spec.ProcessingTimes,
		ArrivalTime:     now,
	}
}

// done reports whether every recipe step has been performed.
func (p *Product) done() bool {
	return p.CurrentStep >= len(p.Recipe)
}

// nextGroup returns the machine group of the next recipe step.
func (p *Product) nextGroup() string {
	return p.Recipe[p.CurrentStep]
}
