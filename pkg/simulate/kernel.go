package simulate

import (
	"cmp"

	"github.com/addrummond/heap"
)

// event is one scheduled callback. Events with equal times fire in scheduling
// order, which keeps runs with the same seed bit-for-bit reproducible.
type event struct {
	at  float64
	seq uint64
	fn  func()
}

func (a *event) Cmp(b *event) int {
	if c := cmp.Compare(a.at, b.at); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// kernel drives the event loop. Components schedule callbacks relative to the
// current simulation time; the kernel pops them in time order until stopped
// or drained.
type kernel struct {
	now     float64
	seq     uint64
	events  heap.Heap[event, heap.Min]
	stopped bool
}

func (k *kernel) schedule(delay float64, fn func()) {
	if delay < 0 {
		panic("simulate: scheduling into the past")
	}
	k.seq++
	heap.PushOrderable(&k.events, event{at: k.now + delay, seq: k.seq, fn: fn})
}

func (k *kernel) run() {
	for !k.stopped {
		ev, ok := heap.PopOrderable(&k.events)
		if !ok {
			return
		}
		k.now = ev.at
		ev.fn()
	}
}

func (k *kernel) stop() {
	k.stopped = true
}
