// Package patterns implements the procedural generators behind each
// background style.
//
// # Overview
//
// A [Pattern] draws by appending [scene.Command] values to a
// [scene.Recorder]. Generators hold no state between calls: every node,
// particle and connection lives only for one Draw. All randomness comes from
// the *rand.Rand passed in, so a fixed seed reproduces a pattern exactly.
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	rec := scene.NewRecorder(1584, 396)
//	patterns.NewNeuralNetwork().Draw(rec, rng)
//
// # Generators
//
//   - [NeuralNetwork]: fully connected adjacent layers on a grid
//   - [DataFlow]: wavy horizontal streams and translucent particles
//   - [BrainPattern]: branching curves around the centre and synapse dots
//   - [KnowledgeGraph]: random categorised nodes, probabilistic links, glow
//   - [MatrixCode]: scattered glyphs and binary digits
//   - [Circuit]: rails, connectors and glowing processing units
//   - [DeepLayers]: layer spines with nodes and probabilistic links
//   - [DataScatter]: coloured points with sparse proximity links
//   - [QuantumRings]: concentric rings, orbiting particles, chords
//   - [TextFlow]: a token pipeline with arrows over a letter texture
//
// Tunables are exported struct fields; the New* constructors return the
// values the built-in styles use.
package patterns
