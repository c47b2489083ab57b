package patterns

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// BrainPattern draws Branches quadratic curves from each of Samples points
// on a jittered circle around the centre, then scatters synapse dots.
type BrainPattern struct {
	Samples  int
	Branches int
	Synapses int
}

// NewBrainPattern returns 20 samples of 3 branches and 30 synapses.
func NewBrainPattern() BrainPattern {
	return BrainPattern{Samples: 20, Branches: 3, Synapses: 30}
}

// Draw implements Pattern.
func (b BrainPattern) Draw(rec *scene.Recorder, rng *rand.Rand) {
	c := rec.Center()

	stroke := scene.RGBA(255, 255, 255, 0.4)
	for i := range b.Samples {
		angle := 2 * math.Pi / float64(b.Samples) * float64(i)
		radius := between(rng, 80, 60)
		start := scene.Polar(c, angle, radius)
		ctrl := scene.Polar(c, angle+0.2, radius*0.7)

		for range b.Branches {
			branchAngle := angle + (rng.Float64()-0.5)*0.8
			branchRadius := radius + rng.Float64()*40
			end := scene.Polar(c, branchAngle, branchRadius)
			rec.Add(scene.Quad(start, ctrl, end).Stroked(stroke, 2).As(scene.RoleBranch))
		}
	}

	fill := scene.RGBA(56, 239, 125, 0.8)
	for range b.Synapses {
		pos := scene.Polar(c, rng.Float64()*2*math.Pi, between(rng, 60, 120))
		rec.Add(scene.Circle(pos, between(rng, 2, 4)).Filled(fill).As(scene.RoleSynapse))
	}
}
