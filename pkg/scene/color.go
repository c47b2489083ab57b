package scene

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA returns a colour from 8-bit channels and a [0,1] opacity, the same
// notation as CSS rgba().
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(alpha)}
}

// WithAlpha returns c with its opacity replaced.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = alpha8(alpha)
	return c
}

// Hex parses "#rrggbb" (or "#rgb") into an opaque colour.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(expandHex(s))
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is like Hex but panics on malformed input.
// It is meant for package-level colour tables.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSL returns an opaque colour from hue in degrees and saturation and
// lightness in [0,1].
func HSL(h, s, l float64) color.NRGBA {
	r, g, b := colorful.Hsl(math.Mod(h, 360), s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(max(0, min(a, 1)) * 255))
}

// expandHex turns the short "#rgb" form into "#rrggbb".
func expandHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
