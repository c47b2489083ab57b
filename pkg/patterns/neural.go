package patterns

import (
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

// NeuralNetwork lays out Layers columns of NodesPerLayer nodes and connects
// every node to every node of the next layer.
type NeuralNetwork struct {
	Layers        int
	NodesPerLayer int
	NodeRadius    float64
}

// NewNeuralNetwork returns a 4x6 network.
func NewNeuralNetwork() NeuralNetwork {
	return NeuralNetwork{Layers: 4, NodesPerLayer: 6, NodeRadius: 8}
}

type layerNode struct {
	pos   scene.Point
	layer int
}

// Draw implements Pattern. It uses no randomness.
func (n NeuralNetwork) Draw(rec *scene.Recorder, _ *rand.Rand) {
	nodes := make([]layerNode, 0, n.Layers*n.NodesPerLayer)
	for l := range n.Layers {
		for i := range n.NodesPerLayer {
			nodes = append(nodes, layerNode{
				pos:   scene.Pt(spaced(rec.Width(), n.Layers, l), spaced(rec.Height(), n.NodesPerLayer, i)),
				layer: l,
			})
		}
	}

	edge := scene.RGBA(0, 255, 255, 0.3)
	for _, a := range nodes {
		for _, b := range nodes {
			if b.layer == a.layer+1 {
				rec.Add(scene.Line(a.pos, b.pos).Stroked(edge, 1).As(scene.RoleConnection))
			}
		}
	}

	fill := scene.RGBA(0, 255, 255, 0.8)
	for _, node := range nodes {
		rec.Add(scene.Circle(node.pos, n.NodeRadius).Filled(fill).As(scene.RoleNode))
	}
}
