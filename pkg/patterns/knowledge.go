package patterns

import (
	"image/color"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// knowledgeColors are the node colours by category.
var knowledgeColors = []color.NRGBA{
	scene.RGBA(255, 107, 107, 0.8),
	scene.RGBA(78, 205, 196, 0.8),
	scene.RGBA(255, 195, 113, 0.8),
}

// KnowledgeGraph scatters Nodes nodes of random category and links each
// ordered pair closer than Threshold with probability LinkProbability.
// Nodes are painted twice, the second time with a glow in their colour.
type KnowledgeGraph struct {
	Nodes           int
	Threshold       float64
	LinkProbability float64
	Margin          float64
	GlowBlur        float64
}

// NewKnowledgeGraph returns 15 nodes, linked under 200px with p=0.3.
func NewKnowledgeGraph() KnowledgeGraph {
	return KnowledgeGraph{Nodes: 15, Threshold: 200, LinkProbability: 0.3, Margin: 50, GlowBlur: 10}
}

type categoryNode struct {
	pos      scene.Point
	size     float64
	category int
}

// Draw implements Pattern.
func (k KnowledgeGraph) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()

	nodes := make([]categoryNode, k.Nodes)
	for i := range nodes {
		nodes[i] = categoryNode{
			pos: scene.Pt(
				between(rng, k.Margin, w-2*k.Margin),
				between(rng, k.Margin, h-2*k.Margin),
			),
			size:     between(rng, 10, 15),
			category: rng.IntN(len(knowledgeColors)),
		}
	}

	type link struct{ from, to int }
	var links []link
	for i, a := range nodes {
		for j, b := range nodes {
			if i == j {
				continue
			}
			if a.pos.Dist(b.pos) < k.Threshold && chance(rng, k.LinkProbability) {
				links = append(links, link{i, j})
			}
		}
	}

	stroke := scene.RGBA(255, 255, 255, 0.4)
	for _, l := range links {
		rec.Add(scene.Line(nodes[l.from].pos, nodes[l.to].pos).Stroked(stroke, 2).As(scene.RoleConnection))
	}

	for _, n := range nodes {
		col := knowledgeColors[n.category]
		dot := scene.Circle(n.pos, n.size).Filled(col).As(scene.RoleNode)
		rec.Add(dot, dot.Glowing(col, k.GlowBlur))
	}
}
