package simulate

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func testSpec(productType, size int) ProductSpec {
	return ProductSpec{
		Type:            productType,
		Size:            size,
		Recipe:          []string{"A"},
		ProcessingTimes: map[string]float64{"A": 60},
		Probability:     1,
	}
}

// queuedRouter returns a router with the given products parked in its queue
// and dispatching suspended.
func queuedRouter(strategy Strategy, machineCapacity int, products ...*Product) (*router, *machine) {
	k := &kernel{}
	snk := &sink{k: k, target: 1 << 30}
	rt := newRouter(k, strategy, 30, 0, snk)
	m := newMachine(k, MachineSpec{Name: "A", Capacity: machineCapacity}, 0, rt)
	rt.addMachine(m)

	rt.busy = true
	for _, p := range products {
		rt.accept(p)
	}
	rt.busy = false
	return rt, m
}

func TestRouterSelection(t *testing.T) {
	Convey("With products of sizes 1, 3, 2, 3 waiting", t, func() {
		products := []*Product{
			newProduct(testSpec(0, 1), 0),
			newProduct(testSpec(0, 3), 0),
			newProduct(testSpec(0, 2), 0),
			newProduct(testSpec(0, 3), 0),
		}

		Convey("A FIFO router picks the first product", func() {
			rt, m := queuedRouter(StrategyFIFO, 10, products...)
			idx, picked := rt.selectNext()
			So(idx, ShouldEqual, 0)
			So(picked, ShouldEqual, m)
		})

		Convey("A priority router picks the earliest largest product", func() {
			rt, _ := queuedRouter(StrategyPriority, 10, products...)
			idx, _ := rt.selectNext()
			So(idx, ShouldEqual, 1)
		})

		Convey("Nothing is selected when no machine fits", func() {
			rt, _ := queuedRouter(StrategyPriority, 10, products...)
			for _, group := range rt.machines {
				for _, m := range group {
					m.processing = true
				}
			}
			idx, picked := rt.selectNext()
			So(idx, ShouldEqual, -1)
			So(picked, ShouldBeNil)
		})
	})
}

func TestRouterMachinePreference(t *testing.T) {
	Convey("With two machines of one group", t, func() {
		k := &kernel{}
		snk := &sink{k: k, target: 1 << 30}
		rt := newRouter(k, StrategyFIFO, 30, 0, snk)
		first := newMachine(k, MachineSpec{Name: "A", Group: "A", Capacity: 3}, 600, rt)
		second := newMachine(k, MachineSpec{Name: "A_new", Group: "A", Capacity: 3}, 600, rt)
		rt.addMachine(second)
		rt.addMachine(first)

		Convey("An idle machine is picked in name order", func() {
			So(rt.pickMachine(newProduct(testSpec(0, 1), 0)), ShouldEqual, first)
		})

		Convey("A machine already batching the product's type is preferred", func() {
			second.accept(newProduct(testSpec(0, 1), 0))
			So(rt.pickMachine(newProduct(testSpec(0, 1), 0)), ShouldEqual, second)
		})

		Convey("A machine batching another type is skipped", func() {
			first.accept(newProduct(testSpec(1, 1), 0))
			second.accept(newProduct(testSpec(1, 1), 0))
			p := newProduct(testSpec(0, 1), 0)
			So(rt.pickMachine(p), ShouldBeNil)
		})
	})
}

func TestRouterSpoilage(t *testing.T) {
	Convey("With a 20 s shelf time and 30 s routing", t, func() {
		k := &kernel{}
		snk := &sink{k: k, target: 1 << 30}
		rt := newRouter(k, StrategyFIFO, 30, 20, snk)
		m := newMachine(k, MachineSpec{Name: "A", Capacity: 10}, 0, rt)
		rt.addMachine(m)

		Convey("A product dispatched from an empty queue never spoils", func() {
			// Routing alone takes longer than the shelf time; only queue wait
			// counts against it.
			p := newProduct(testSpec(0, 1), 0)
			rt.accept(p)
			k.run()

			So(p.Spoiled, ShouldBeFalse)
			So(p.QueueWait, ShouldEqual, 0)
			So(snk.finished, ShouldEqual, 1)
		})

		Convey("A product that outwaits the shelf time in the queue spoils", func() {
			first := newProduct(testSpec(0, 1), 0)
			second := newProduct(testSpec(0, 1), 0)
			rt.accept(first)
			rt.accept(second)
			k.run()

			// The second product queued for 30 s behind the first one's
			// dispatch, beyond the 20 s shelf time.
			So(first.Spoiled, ShouldBeFalse)
			So(second.Spoiled, ShouldBeTrue)
			So(second.QueueWait, ShouldBeGreaterThan, 20)

			Convey("Both still flow through, only one counts", func() {
				So(snk.products, ShouldHaveLength, 2)
				So(snk.finished, ShouldEqual, 1)
			})
		})
	})
}

func TestMachineBatching(t *testing.T) {
	Convey("With a capacity 3 machine", t, func() {
		k := &kernel{}
		snk := &sink{k: k, target: 1 << 30}
		rt := newRouter(k, StrategyFIFO, 30, 0, snk)
		m := newMachine(k, MachineSpec{Name: "A", Capacity: 3}, 600, rt)
		rt.addMachine(m)

		Convey("It accepts same-type products until no further one fits", func() {
			m.accept(newProduct(testSpec(0, 1), 0))
			So(m.processing, ShouldBeFalse)
			So(m.canAccept(newProduct(testSpec(0, 1), 0)), ShouldBeTrue)

			m.accept(newProduct(testSpec(0, 1), 0))
			So(m.processing, ShouldBeFalse)

			// Third unit fills the batch and starts processing.
			m.accept(newProduct(testSpec(0, 1), 0))
			So(m.processing, ShouldBeTrue)
			So(m.canAccept(newProduct(testSpec(0, 1), 0)), ShouldBeFalse)
		})

		Convey("It starts early when the remaining capacity cannot fit the type", func() {
			m.accept(newProduct(testSpec(1, 2), 0))
			So(m.processing, ShouldBeTrue)
		})

		Convey("Mixing product types in one batch panics", func() {
			m.accept(newProduct(testSpec(0, 1), 0))
			So(func() { m.accept(newProduct(testSpec(1, 1), 0)) }, ShouldPanic)
		})

		Convey("With maxWait zero the batch starts immediately", func() {
			instant := newMachine(k, MachineSpec{Name: "B", Capacity: 3}, 0, rt)
			instant.accept(newProduct(testSpec(0, 1), 0))
			So(instant.processing, ShouldBeTrue)
		})
	})
}
