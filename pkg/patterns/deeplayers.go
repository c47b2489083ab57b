package patterns

import (
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// DeepLayers draws Layers vertical spines that grow more opaque left to
// right, NodesPerLayer dots on each, and links each node pair of adjacent
// layers with probability LinkProbability.
type DeepLayers struct {
	Layers          int
	NodesPerLayer   int
	LinkProbability float64
	Inset           float64
	NodeRadius      float64
}

// NewDeepLayers returns 6 layers of 5 nodes with p=0.3 links.
func NewDeepLayers() DeepLayers {
	return DeepLayers{Layers: 6, NodesPerLayer: 5, LinkProbability: 0.3, Inset: 50, NodeRadius: 6}
}

// Draw implements Pattern.
func (d DeepLayers) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()
	white := scene.RGBA(255, 255, 255, 1)

	for l := range d.Layers {
		x := spaced(w, d.Layers, l)
		col := scene.WithAlpha(white, 0.3+float64(l)/float64(d.Layers)*0.5)

		rec.Add(scene.Line(scene.Pt(x, d.Inset), scene.Pt(x, h-d.Inset)).Stroked(col, 3).As(scene.RoleSpine))
		for i := range d.NodesPerLayer {
			pos := scene.Pt(x, spaced(h, d.NodesPerLayer, i))
			rec.Add(scene.Circle(pos, d.NodeRadius).Filled(col).As(scene.RoleNode))
		}
	}

	stroke := scene.WithAlpha(white, 0.2)
	for l := 0; l < d.Layers-1; l++ {
		x1, x2 := spaced(w, d.Layers, l), spaced(w, d.Layers, l+1)
		for i := range d.NodesPerLayer {
			for j := range d.NodesPerLayer {
				if !chance(rng, d.LinkProbability) {
					continue
				}
				y1, y2 := spaced(h, d.NodesPerLayer, i), spaced(h, d.NodesPerLayer, j)
				rec.Add(scene.Line(scene.Pt(x1, y1), scene.Pt(x2, y2)).Stroked(stroke, 1).As(scene.RoleConnection))
			}
		}
	}
}
