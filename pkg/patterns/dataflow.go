package patterns

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// DataFlow draws Streams evenly spaced horizontal Bézier streams, bent by
// the sine of their index, with Particles translucent dots on top.
type DataFlow struct {
	Streams   int
	Particles int
	Amplitude float64
}

// NewDataFlow returns 8 streams and 50 particles.
func NewDataFlow() DataFlow {
	return DataFlow{Streams: 8, Particles: 50, Amplitude: 30}
}

type particle struct {
	pos     scene.Point
	size    float64
	opacity float64
}

// Draw implements Pattern.
func (d DataFlow) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()

	particles := make([]particle, d.Particles)
	for i := range particles {
		particles[i] = particle{
			pos:     scene.Pt(rng.Float64()*w, rng.Float64()*h),
			size:    between(rng, 2, 4),
			opacity: between(rng, 0.2, 0.8),
		}
	}

	white := scene.RGBA(255, 255, 255, 1)
	stroke := scene.WithAlpha(white, 0.3)
	for i := range d.Streams {
		y := spaced(h, d.Streams, i)
		bend := math.Sin(float64(i)) * d.Amplitude
		rec.Add(scene.Cubic(
			scene.Pt(0, y),
			scene.Pt(w*0.3, y+bend),
			scene.Pt(w*0.7, y-bend),
			scene.Pt(w, y),
		).Stroked(stroke, 2).As(scene.RoleStream))
	}

	for _, p := range particles {
		rec.Add(scene.Circle(p.pos, p.size).
			Filled(scene.WithAlpha(white, p.opacity)).
			As(scene.RoleParticle))
	}
}
