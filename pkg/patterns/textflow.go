package patterns

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/fonts"
	"github.com/matzehuels/backdrop/pkg/scene"
)

// DefaultVocabulary is the token pipeline TextFlow spells out.
var DefaultVocabulary = []string{"AI", "NLP", "TEXT", "PARSE", "TOKEN", "EMBED", "VECTOR", "SEMANTIC"}

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// TextFlow places Vocabulary left to right on a sine wave through the
// middle of the canvas, joins consecutive tokens with arrows, and scatters
// Letters lowercase letters as texture.
type TextFlow struct {
	Vocabulary []string
	Letters    int
	TokenSize  float64
	LetterSize float64
}

// NewTextFlow returns the default vocabulary and 50 letters.
func NewTextFlow() TextFlow {
	return TextFlow{Vocabulary: DefaultVocabulary, Letters: 50, TokenSize: 16, LetterSize: 12}
}

// Draw implements Pattern.
func (t TextFlow) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()
	n := len(t.Vocabulary)

	tokenFill := scene.RGBA(255, 255, 255, 0.7)
	arrow := scene.RGBA(255, 255, 255, 0.5)
	for i, word := range t.Vocabulary {
		x := spaced(w, n, i)
		y := h/2 + math.Sin(float64(i)*0.8)*30
		half := fonts.Width(word, t.TokenSize) / 2

		rec.Add(scene.Text(word, scene.Pt(x-half, y), t.TokenSize).Filled(tokenFill).As(scene.RoleToken))

		if i == n-1 {
			continue
		}
		// The arrow runs at this token's height, 10px clear of both words.
		nextHalf := fonts.Width(t.Vocabulary[i+1], t.TokenSize) / 2
		tip := scene.Pt(spaced(w, n, i+1)-nextHalf-10, y-5)
		rec.Add(
			scene.Line(scene.Pt(x+half+10, y-5), tip).Stroked(arrow, 2).As(scene.RoleArrow),
			scene.Polygon(tip, scene.Pt(tip.X-5, y-10), scene.Pt(tip.X-5, y)).Filled(tokenFill).As(scene.RoleArrow),
		)
	}

	letters := []rune(lowercase)
	fill := scene.RGBA(255, 255, 255, 0.4)
	for range t.Letters {
		pos := scene.Pt(rng.Float64()*w, rng.Float64()*h)
		rec.Add(scene.Text(pick(rng, letters), pos, t.LetterSize).Filled(fill).As(scene.RoleGlyph))
	}
}
