package effects

import "github.com/ivlev/motionkit/internal/director"

// ViewGate turns intersection ratios reported by the host into an in-view
// flag.
type ViewGate struct {
	Config director.ViewConfig
	seen   bool
}

func NewViewGate(cfg director.ViewConfig) *ViewGate {
	return &ViewGate{Config: cfg}
}

// Observe records the current visible fraction (0..1) and reports whether the
// element is in view. With Once the gate latches after the first hit.
func (g *ViewGate) Observe(ratio float64) bool {
	if g.Config.Once && g.seen {
		return true
	}

	in := ratio > 0 && ratio >= g.Config.Amount
	if in {
		g.seen = true
	}
	return in
}
