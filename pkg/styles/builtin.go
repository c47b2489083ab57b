package styles

import (
	"github.com/matzehuels/backdrop/pkg/patterns"
	"github.com/matzehuels/backdrop/pkg/scene"
)

// Built-in style keys.
const (
	AINeural     = "ai_neural"
	MLData       = "ml_data"
	LLMBrain     = "llm_brain"
	RAGKnowledge = "rag_knowledge"
	TechMatrix   = "tech_matrix"
	AICircuit    = "ai_circuit"
	DeepLearning = "deep_learning"
	DataScience  = "data_science"
	QuantumAI    = "quantum_ai"
	NLPText      = "nlp_text"
)

// DefaultKey is the style used when none is chosen.
const DefaultKey = AINeural

var (
	center   = scene.Pt(0.5, 0.5)
	topLeft  = scene.Pt(0, 0)
	botRight = scene.Pt(1, 1)
	topRight = scene.Pt(1, 0)
)

// stops spreads hex colours over [0,1]: two colours at 0 and 1, three at 0,
// 0.5 and 1.
func stops(hex ...string) []scene.Stop {
	out := make([]scene.Stop, len(hex))
	for i, h := range hex {
		out[i] = scene.Stop{Offset: float64(i) / float64(len(hex)-1), Color: scene.MustHex(h)}
	}
	return out
}

func diagonal(hex ...string) scene.Gradient {
	return scene.LinearGradient(topLeft, botRight, stops(hex...)...)
}

func radial(hex ...string) scene.Gradient {
	return scene.RadialGradient(center, 0, 0.5, stops(hex...)...)
}

func builtins() []Descriptor {
	return []Descriptor{
		{AINeural, "AI Neural Network", radial("#1a1a2e", "#16213e"), patterns.NewNeuralNetwork()},
		{MLData, "ML Data Flow", diagonal("#0f4c75", "#3282b8", "#bbe1fa"), patterns.NewDataFlow()},
		{LLMBrain, "LLM Brain Pattern", diagonal("#2d1b69", "#11998e", "#38ef7d"), patterns.NewBrainPattern()},
		{RAGKnowledge, "RAG Knowledge Graph", diagonal("#1e3c72", "#2a5298"), patterns.NewKnowledgeGraph()},
		{TechMatrix, "Tech Matrix", diagonal("#000000", "#1a1a1a"), patterns.NewMatrixCode()},
		{AICircuit, "AI Circuit Board", diagonal("#0f3460", "#16537e"), patterns.NewCircuit()},
		{DeepLearning, "Deep Learning Layers", scene.LinearGradient(topLeft, topRight, stops("#667eea", "#764ba2", "#f093fb")...), patterns.NewDeepLayers()},
		{DataScience, "Data Science Visualization", diagonal("#ff9a9e", "#fecfef", "#fecfef"), patterns.NewDataScatter()},
		{QuantumAI, "Quantum AI", radial("#4b0082", "#8a2be2", "#000080"), patterns.NewQuantumRings()},
		{NLPText, "NLP Text Processing", diagonal("#134e5e", "#71b280"), patterns.NewTextFlow()},
	}
}
