package simulate

import (
	"sort"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

// Strategy selects which waiting product the router dispatches next.
type Strategy int

const (
	// StrategyFIFO dispatches products in arrival order.
	StrategyFIFO Strategy = iota
	// StrategyPriority dispatches larger products first, FIFO within a size.
	StrategyPriority
)

func (s Strategy) String() string {
	switch s {
	case StrategyFIFO:
		return "fifo"
	case StrategyPriority:
		return "priority"
	}
	return "unknown"
}

// ParseStrategy maps a strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "fifo":
		return StrategyFIFO, nil
	case "priority":
		return StrategyPriority, nil
	}
	return 0, errors.Errorf("unknown dispatching strategy %q", name)
}

// router dispatches products to machines. It handles one product at a time;
// dispatching takes size × timePerSize seconds. Products whose recipe is
// complete go to the sink instead.
type router struct {
	k           *kernel
	strategy    Strategy
	timePerSize float64
	shelfTime   float64 // 0 disables spoilage
	machines    map[string][]*machine
	snk         *sink

	queue deque.Deque[*Product]
	busy  bool

	lastTime  float64
	queueArea float64 // integral of queue length over time
}

func newRouter(k *kernel, strategy Strategy, timePerSize, shelfTime float64, snk *sink) *router {
	return &router{
		k:           k,
		strategy:    strategy,
		timePerSize: timePerSize,
		shelfTime:   shelfTime,
		machines:    map[string][]*machine{},
		snk:         snk,
	}
}

func (r *router) addMachine(m *machine) {
	group := r.machines[m.group]
	group = append(group, m)
	// Deterministic candidate order regardless of configuration order.
	sort.Slice(group, func(i, j int) bool { return group[i].name < group[j].name })
	r.machines[m.group] = group
}

// accept takes a product from the generator or from a machine. It always ends
// with a dispatch attempt so freed machine capacity is offered to the queue.
func (r *router) accept(p *Product) {
	if p.done() {
		r.snk.collect(p)
	} else {
		p.RouterEntryTime = r.k.now
		r.tick()
		r.queue.PushBack(p)
	}
	r.dispatch()
}

// tick folds the elapsed interval into the queue-length integral. Call before
// every queue length change.
func (r *router) tick() {
	r.queueArea += float64(r.queue.Len()) * (r.k.now - r.lastTime)
	r.lastTime = r.k.now
}

func (r *router) dispatch() {
	if r.busy {
		return
	}
	idx, m := r.selectNext()
	if idx < 0 {
		return
	}
	r.tick()
	p := r.queue.Remove(idx)
	p.QueueWait += r.k.now - p.RouterEntryTime
	if r.shelfTime > 0 && p.QueueWait > r.shelfTime {
		p.Spoiled = true
	}
	r.busy = true
	r.k.schedule(float64(p.Size)*r.timePerSize, func() { r.deliver(p, m) })
}

func (r *router) deliver(p *Product, m *machine) {
	r.busy = false
	if !m.canAccept(p) {
		// The machine started its batch while we were routing. Requeue at the
		// front; selectNext will find it another machine or wait.
		r.tick()
		p.RouterEntryTime = r.k.now
		r.queue.PushFront(p)
	} else {
		m.accept(p)
	}
	r.dispatch()
}

// selectNext picks the next (product, machine) pair to dispatch, or -1 when
// nothing is dispatchable.
func (r *router) selectNext() (int, *machine) {
	bestIdx := -1
	var bestMachine *machine
	for i := 0; i < r.queue.Len(); i++ {
		p := r.queue.At(i)
		m := r.pickMachine(p)
		if m == nil {
			continue
		}
		if r.strategy == StrategyFIFO {
			return i, m
		}
		if bestIdx < 0 || p.Size > r.queue.At(bestIdx).Size {
			bestIdx, bestMachine = i, m
		}
	}
	return bestIdx, bestMachine
}

// pickMachine returns the machine p should go to, preferring one already
// forming a batch of p's type so batches fill up.
func (r *router) pickMachine(p *Product) *machine {
	var idle *machine
	for _, m := range r.machines[p.nextGroup()] {
		if !m.canAccept(p) {
			continue
		}
		if m.batchType == p.Type {
			return m
		}
		if idle == nil {
			idle = m
		}
	}
	return idle
}

// averageQueueLength returns the time-weighted average router queue length.
func (r *router) averageQueueLength(simTime float64) float64 {
	if simTime <= 0 {
		return 0
	}
	area := r.queueArea + float64(r.queue.Len())*(simTime-r.lastTime)
	return area / simTime
}
