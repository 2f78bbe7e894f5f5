package simulate

// sink collects finished products and stops the simulation once the target
// number of unspoiled products has been reached.
type sink struct {
	k        *kernel
	target   int
	products []*Product
	finished int // unspoiled only
}

func (s *sink) collect(p *Product) {
	p.FlowTime = s.k.now - p.ArrivalTime
	s.products = append(s.products, p)
	if p.Spoiled {
		return
	}
	s.finished++
	if s.finished >= s.target {
		s.k.stop()
	}
}
