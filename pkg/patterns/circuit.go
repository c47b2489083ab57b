package patterns

import (
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// Circuit draws horizontal rails, vertical connectors spanning random upper
// and lower bands, and small glowing processing units.
type Circuit struct {
	Rails      int
	Connectors int
	Units      int
	Margin     float64
	UnitW      float64
	UnitH      float64
	GlowBlur   float64
}

// NewCircuit returns 8 rails, 12 connectors and 10 units.
func NewCircuit() Circuit {
	return Circuit{Rails: 8, Connectors: 12, Units: 10, Margin: 50, UnitW: 20, UnitH: 15, GlowBlur: 8}
}

// Draw implements Pattern.
func (c Circuit) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()
	stroke := scene.RGBA(0, 255, 255, 0.6)

	for i := range c.Rails {
		y := spaced(h, c.Rails, i)
		rec.Add(scene.Line(scene.Pt(c.Margin, y), scene.Pt(w-c.Margin, y)).Stroked(stroke, 2).As(scene.RoleRail))
	}

	// Connectors start in the 10-40% band and end in the 60-90% band.
	for i := range c.Connectors {
		x := spaced(w, c.Connectors, i)
		startY := rng.Float64()*h*0.3 + h*0.1
		endY := rng.Float64()*h*0.3 + h*0.6
		rec.Add(scene.Line(scene.Pt(x, startY), scene.Pt(x, endY)).Stroked(stroke, 2).As(scene.RoleConnector))
	}

	fill := scene.RGBA(255, 165, 0, 0.8)
	for range c.Units {
		x := between(rng, c.Margin, w-2*c.Margin)
		y := between(rng, 30, h-60)
		unit := scene.Rectangle(x, y, c.UnitW, c.UnitH).Filled(fill).As(scene.RoleUnit)
		rec.Add(unit, unit.Glowing(fill, c.GlowBlur))
	}
}
