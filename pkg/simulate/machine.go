package simulate

import "fmt"

// MachineSpec describes one machine of the shop. Machines belong to a group;
// recipes and processing times are expressed in terms of groups, so adding a
// second machine of group "A" doubles the shop's throughput for "A" steps.
type MachineSpec struct {
	Name string
	// Group the machine serves. Defaults to Name when empty.
	Group    string
	Capacity int
}

// MachineStats is a snapshot of one machine's counters at the end of a run.
type MachineStats struct {
	Name string
	// Utilization is the fraction of simulated time spent processing.
	Utilization float64
	// AverageOccupancy is the mean used capacity while processing.
	AverageOccupancy float64
	Batches          int
}

// machine processes same-type batches of products. A batch starts when no
// further product of its type fits, or maxWait after the first product joined
// it. maxWait zero starts the batch immediately.
type machine struct {
	k        *kernel
	name     string
	group    string
	capacity int
	maxWait  float64
	out      *router

	batch      []*Product
	batchType  int // -1 while the batch is empty
	used       int
	processing bool
	epoch      int // invalidates pending wait timers

	totalProcessing float64
	occupancyArea   float64 // integral of used capacity over processing time
	batches         int
}

func newMachine(k *kernel, spec MachineSpec, maxWait float64, out *router) *machine {
	group := spec.Group
	if group == "" {
		group = spec.Name
	}
	return &machine{
		k:         k,
		name:      spec.Name,
		group:     group,
		capacity:  spec.Capacity,
		maxWait:   maxWait,
		out:       out,
		batchType: -1,
	}
}

// canAccept reports whether the router may dispatch p to this machine now.
func (m *machine) canAccept(p *Product) bool {
	if m.processing {
		return false
	}
	if m.batchType >= 0 && m.batchType != p.Type {
		return false
	}
	return m.used+p.Size <= m.capacity
}

func (m *machine) accept(p *Product) {
	// The router checks canAccept before delivering; a violation here is a
	// dispatching bug.
	if m.processing {
		panic(fmt.Sprintf("simulate: machine %s accepted a product while processing", m.name))
	}
	if m.batchType >= 0 && m.batchType != p.Type {
		panic(fmt.Sprintf("simulate: machine %s mixed product types %d and %d in one batch",
			m.name, m.batchType, p.Type))
	}
	if m.used+p.Size > m.capacity {
		panic(fmt.Sprintf("simulate: machine %s over capacity", m.name))
	}

	if m.batchType < 0 {
		m.batchType = p.Type
	}
	m.batch = append(m.batch, p)
	m.used += p.Size

	if m.capacity-m.used < p.Size || m.maxWait <= 0 {
		// No further product of this type fits, or waiting is disabled.
		m.startBatch()
		return
	}

	if len(m.batch) == 1 {
		epoch := m.epoch
		m.k.schedule(m.maxWait, func() {
			// Only fire if the batch the timer was armed for is still forming.
			if m.epoch == epoch && !m.processing && len(m.batch) > 0 {
				m.startBatch()
			}
		})
	}
}

func (m *machine) startBatch() {
	duration := m.batch[0].ProcessingTimes[m.group]
	m.processing = true
	m.epoch++

	m.totalProcessing += duration
	m.occupancyArea += float64(m.used) * duration
	m.batches++

	batch := m.batch
	m.k.schedule(duration, func() { m.finishBatch(batch) })
}

func (m *machine) finishBatch(batch []*Product) {
	m.batch = nil
	m.batchType = -1
	m.used = 0
	m.processing = false

	// Returning products to the router also re-triggers dispatching, so the
	// freed capacity is offered to the queue right away.
	for _, p := range batch {
		p.CurrentStep++
		m.out.accept(p)
	}
}

// stats snapshots the machine counters for a run of the given length.
func (m *machine) stats(simTime float64) MachineStats {
	s := MachineStats{Name: m.name, Batches: m.batches}
	if simTime > 0 {
		s.Utilization = m.totalProcessing / simTime
	}
	if m.totalProcessing > 0 {
		s.AverageOccupancy = m.occupancyArea / m.totalProcessing
	}
	return s
}
