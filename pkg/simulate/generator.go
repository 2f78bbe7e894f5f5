package simulate

import (
	"math/rand"
)

// generator emits products with Uniform(0, 2/rate) interarrival times, which
// keeps the configured average rate. It runs until the kernel stops; the sink
// decides when enough products have finished.
type generator struct {
	k         *kernel
	rng       *rand.Rand
	rate      float64 // products per second
	specs     []ProductSpec
	out       *router
	generated int
}

func (g *generator) start() {
	// The first product arrives at time zero.
	g.k.schedule(0, g.emit)
}

func (g *generator) emit() {
	p := newProduct(g.pick(), g.k.now)
	g.generated++
	g.out.accept(p)
	g.k.schedule(g.rng.Float64()*2.0/g.rate, g.emit)
}

// pick selects a product type by cumulative probability. Draws falling beyond
// the configured probabilities select the last type.
func (g *generator) pick() ProductSpec {
	r := g.rng.Float64()
	cum := 0.0
	selected := g.specs[len(g.specs)-1]
	for _, spec := range g.specs {
		cum += spec.Probability
		if r <= cum {
			selected = spec
			break
		}
	}
	return selected
}
