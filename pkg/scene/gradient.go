package scene

import (
	"image/color"

	errs "github.com/matzehuels/backdrop/pkg/errors"
)

// GradientKind selects the gradient geometry.
type GradientKind int

const (
	// Linear interpolates along the segment From -> To.
	Linear GradientKind = iota
	// Radial interpolates between a circle of radius Inner and a circle of
	// radius Outer, both centred on From.
	Radial
)

// String returns the kind name.
func (k GradientKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	default:
		return "unknown"
	}
}

// Stop is a colour at an offset in [0,1] along a gradient.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a background fill expressed relative to the canvas, so one
// description fits every size. Points are fractions of width and height;
// radial radii are fractions of width.
type Gradient struct {
	Kind         GradientKind
	From, To     Point
	Inner, Outer float64
	Stops        []Stop
}

// LinearGradient returns a linear gradient between two relative points.
func LinearGradient(from, to Point, stops ...Stop) Gradient {
	return Gradient{Kind: Linear, From: from, To: to, Stops: stops}
}

// RadialGradient returns a radial gradient centred on a relative point.
func RadialGradient(center Point, inner, outer float64, stops ...Stop) Gradient {
	return Gradient{Kind: Radial, From: center, To: center, Inner: inner, Outer: outer, Stops: stops}
}

// Validate checks the stop list: at least two stops, strictly increasing
// offsets, starting at 0 and ending at 1.
func (g Gradient) Validate() error {
	if len(g.Stops) < 2 {
		return errs.New(errs.ErrCodeInvalidStyle, "gradient needs at least 2 stops, got %d", len(g.Stops))
	}
	if first := g.Stops[0].Offset; first != 0 {
		return errs.New(errs.ErrCodeInvalidStyle, "first gradient stop must be at 0, got %g", first)
	}
	if last := g.Stops[len(g.Stops)-1].Offset; last != 1 {
		return errs.New(errs.ErrCodeInvalidStyle, "last gradient stop must be at 1, got %g", last)
	}
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Offset <= g.Stops[i-1].Offset {
			return errs.New(errs.ErrCodeInvalidStyle, "gradient stop %d offset %g is not after %g",
				i, g.Stops[i].Offset, g.Stops[i-1].Offset)
		}
	}
	if g.Kind == Radial && (g.Inner < 0 || g.Outer <= g.Inner) {
		return errs.New(errs.ErrCodeInvalidStyle, "radial gradient radii must satisfy 0 <= inner < outer, got %g, %g", g.Inner, g.Outer)
	}
	return nil
}

// Geometry holds a gradient's absolute coordinates for a concrete canvas.
type Geometry struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
}

// Resolve maps the relative description onto a width x height canvas.
func (g Gradient) Resolve(width, height float64) Geometry {
	return Geometry{
		X0: g.From.X * width, Y0: g.From.Y * height, R0: g.Inner * width,
		X1: g.To.X * width, Y1: g.To.Y * height, R1: g.Outer * width,
	}
}
