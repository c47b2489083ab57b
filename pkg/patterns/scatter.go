package patterns

import (
	"image/color"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// DataScatter scatters Points points of random size and hue and links each
// ordered pair closer than Threshold with probability LinkProbability.
type DataScatter struct {
	Points          int
	Threshold       float64
	LinkProbability float64
	Saturation      float64
	Lightness       float64
}

// NewDataScatter returns 80 points linked under 100px with p=0.1.
func NewDataScatter() DataScatter {
	return DataScatter{Points: 80, Threshold: 100, LinkProbability: 0.1, Saturation: 0.7, Lightness: 0.6}
}

type dataPoint struct {
	pos   scene.Point
	size  float64
	color color.NRGBA
}

// Draw implements Pattern.
func (d DataScatter) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()

	points := make([]dataPoint, d.Points)
	for i := range points {
		points[i] = dataPoint{
			pos:   scene.Pt(rng.Float64()*w, rng.Float64()*h),
			size:  between(rng, 3, 8),
			color: scene.HSL(rng.Float64()*360, d.Saturation, d.Lightness),
		}
	}

	stroke := scene.RGBA(255, 255, 255, 0.3)
	for i, a := range points {
		for j, b := range points {
			if i == j {
				continue
			}
			if a.pos.Dist(b.pos) < d.Threshold && chance(rng, d.LinkProbability) {
				rec.Add(scene.Line(a.pos, b.pos).Stroked(stroke, 1).As(scene.RoleConnection))
			}
		}
	}

	for _, p := range points {
		rec.Add(scene.Circle(p.pos, p.size).Filled(p.color).As(scene.RoleNode))
	}
}
