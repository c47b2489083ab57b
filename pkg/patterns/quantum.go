package patterns

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// QuantumRings draws concentric rings fading outwards, particles orbiting
// at a sinusoidally modulated radius, and random chords on a fixed circle.
type QuantumRings struct {
	Rings         int
	Particles     int
	Entanglements int
	ChordRadius   float64
}

// NewQuantumRings returns 8 rings, 20 particles and 10 chords.
func NewQuantumRings() QuantumRings {
	return QuantumRings{Rings: 8, Particles: 20, Entanglements: 10, ChordRadius: 80}
}

// Draw implements Pattern.
func (q QuantumRings) Draw(rec *scene.Recorder, rng *rand.Rand) {
	c := rec.Center()

	// Opacity drops 0.1 per ring; rings past the eighth are invisible.
	for i := range q.Rings {
		radius := 40 + float64(i)*25
		opacity := 0.8 - float64(i)*0.1
		if opacity <= 0 {
			break
		}
		rec.Add(scene.Circle(c, radius).Stroked(scene.RGBA(255, 255, 255, opacity), 2).As(scene.RoleRing))
	}

	fill := scene.RGBA(255, 255, 255, 0.9)
	for i := range q.Particles {
		angle := 2 * math.Pi / float64(q.Particles) * float64(i)
		radius := 60 + math.Sin(float64(i)*0.5)*30
		rec.Add(scene.Circle(scene.Polar(c, angle, radius), 3).Filled(fill).As(scene.RoleParticle))
	}

	stroke := scene.RGBA(138, 43, 226, 0.6)
	for range q.Entanglements {
		a1 := rng.Float64() * 2 * math.Pi
		a2 := rng.Float64() * 2 * math.Pi
		rec.Add(scene.Line(scene.Polar(c, a1, q.ChordRadius), scene.Polar(c, a2, q.ChordRadius)).
			Stroked(stroke, 1).As(scene.RoleChord))
	}
}
