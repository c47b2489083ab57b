package patterns

import (
	"math/rand/v2"

	"github.com/matzehuels/backdrop/pkg/scene"
)

const matrixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%^&*()_+-=[]{}|;:,.<>?"

// MatrixCode scatters Glyphs characters at random opacity, then Bits
// binary digits at a fixed low opacity.
type MatrixCode struct {
	Glyphs    int
	Bits      int
	GlyphSize float64
	BitSize   float64
	Charset   string
}

// NewMatrixCode returns 100 glyphs and 20 bits.
func NewMatrixCode() MatrixCode {
	return MatrixCode{Glyphs: 100, Bits: 20, GlyphSize: 14, BitSize: 12, Charset: matrixCharset}
}

// Draw implements Pattern.
func (m MatrixCode) Draw(rec *scene.Recorder, rng *rand.Rand) {
	w, h := rec.Width(), rec.Height()
	charset := []rune(m.Charset)
	if len(charset) == 0 {
		charset = []rune(matrixCharset)
	}

	for range m.Glyphs {
		pos := scene.Pt(rng.Float64()*w, rng.Float64()*h)
		ch := pick(rng, charset)
		opacity := between(rng, 0.2, 0.8)
		rec.Add(scene.Text(ch, pos, m.GlyphSize).
			Filled(scene.RGBA(0, 255, 0, opacity)).
			As(scene.RoleGlyph))
	}

	fill := scene.RGBA(0, 255, 0, 0.3)
	for range m.Bits {
		pos := scene.Pt(rng.Float64()*w, rng.Float64()*h)
		bit := "0"
		if rng.Float64() > 0.5 {
			bit = "1"
		}
		rec.Add(scene.Text(bit, pos, m.BitSize).Filled(fill).As(scene.RoleParticle))
	}
}
