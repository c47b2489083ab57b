package scene

import "image/color"

// Kind identifies the primitive a Command draws.
type Kind int

const (
	KindLine    Kind = iota // Points: from, to
	KindQuad                // Points: start, control, end
	KindCubic               // Points: start, control1, control2, end
	KindCircle              // Points: centre; Radius
	KindRect                // Rect
	KindPolygon             // Points: closed outline
	KindText                // Points: baseline origin; Text, FontSize
)

var kindNames = [...]string{"line", "quad", "cubic", "circle", "rect", "polygon", "text"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Role tags what a command represents inside a pattern.
type Role string

const (
	RoleNone       Role = ""
	RoleConnection Role = "connection"
	RoleNode       Role = "node"
	RoleParticle   Role = "particle"
	RoleStream     Role = "stream"
	RoleBranch     Role = "branch"
	RoleSynapse    Role = "synapse"
	RoleGlyph      Role = "glyph"
	RoleRail       Role = "rail"
	RoleConnector  Role = "connector"
	RoleUnit       Role = "unit"
	RoleSpine      Role = "spine"
	RoleRing       Role = "ring"
	RoleChord      Role = "chord"
	RoleToken      Role = "token"
	RoleArrow      Role = "arrow"
)

// Glow is a blurred halo painted beneath a shape, in the manner of a canvas
// shadow with zero offset.
type Glow struct {
	Color color.NRGBA
	Blur  float64
}

// Command is one immutable drawing primitive. A zero Fill or Stroke alpha
// means that part is not painted.
type Command struct {
	Kind      Kind
	Points    []Point
	Radius    float64
	Rect      Rect
	Text      string
	FontSize  float64
	Fill      color.NRGBA
	Stroke    color.NRGBA
	LineWidth float64
	Glow      Glow
	Role      Role
}

// Line returns a straight segment from a to b.
func Line(a, b Point) Command {
	return Command{Kind: KindLine, Points: []Point{a, b}}
}

// Quad returns a quadratic Bézier curve.
func Quad(start, ctrl, end Point) Command {
	return Command{Kind: KindQuad, Points: []Point{start, ctrl, end}}
}

// Cubic returns a cubic Bézier curve.
func Cubic(start, c1, c2, end Point) Command {
	return Command{Kind: KindCubic, Points: []Point{start, c1, c2, end}}
}

// Circle returns a full circle.
func Circle(center Point, r float64) Command {
	return Command{Kind: KindCircle, Points: []Point{center}, Radius: r}
}

// Rectangle returns an axis-aligned rectangle.
func Rectangle(x, y, w, h float64) Command {
	return Command{Kind: KindRect, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// Polygon returns a closed outline through pts.
func Polygon(pts ...Point) Command {
	return Command{Kind: KindPolygon, Points: append([]Point(nil), pts...)}
}

// Text returns a run of monospace text whose baseline starts at origin.
func Text(s string, origin Point, size float64) Command {
	return Command{Kind: KindText, Points: []Point{origin}, Text: s, FontSize: size}
}

// Filled returns a copy of c filled with col.
func (c Command) Filled(col color.NRGBA) Command {
	c.Fill = col
	return c
}

// Stroked returns a copy of c outlined with col at the given width.
func (c Command) Stroked(col color.NRGBA, width float64) Command {
	c.Stroke = col
	c.LineWidth = width
	return c
}

// Glowing returns a copy of c with a halo of col blurred by blur pixels.
func (c Command) Glowing(col color.NRGBA, blur float64) Command {
	c.Glow = Glow{Color: col, Blur: blur}
	return c
}

// As returns a copy of c tagged with role.
func (c Command) As(role Role) Command {
	c.Role = role
	return c
}

// HasFill reports whether the command paints its interior.
func (c Command) HasFill() bool { return c.Fill.A > 0 }

// HasStroke reports whether the command paints its outline.
func (c Command) HasStroke() bool { return c.Stroke.A > 0 && c.LineWidth > 0 }

// HasGlow reports whether the command paints a halo.
func (c Command) HasGlow() bool { return c.Glow.Color.A > 0 && c.Glow.Blur > 0 }

// Bounds returns a box containing everything the command paints, ignoring
// glow. Curve bounds use the control polygon; text bounds are estimated
// from the monospace advance (0.6em) and ascent.
func (c Command) Bounds() Rect {
	var r Rect
	switch c.Kind {
	case KindCircle:
		p := c.Points[0]
		r = Rect{X: p.X - c.Radius, Y: p.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
	case KindRect:
		r = c.Rect
	case KindText:
		p := c.Points[0]
		w := 0.6 * c.FontSize * float64(len([]rune(c.Text)))
		r = Rect{X: p.X, Y: p.Y - c.FontSize, W: w, H: 1.25 * c.FontSize}
	default:
		r = boundsOf(c.Points)
	}
	if c.HasStroke() {
		r = r.Grow(c.LineWidth / 2)
	}
	return r
}
