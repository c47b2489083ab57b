package scene

import (
	"image/color"
	"math"
	"testing"

	errs "github.com/matzehuels/backdrop/pkg/errors"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#1a1a2e", color.NRGBA{0x1a, 0x1a, 0x2e, 0xff}, false},
		{"#000000", color.NRGBA{0, 0, 0, 0xff}, false},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"1a1a2e", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(0, 255, 255, 0.8); got != (color.NRGBA{0, 255, 255, 204}) {
		t.Errorf("RGBA(0,255,255,0.8) = %v", got)
	}
	if got := RGBA(1, 2, 3, 2); got.A != 255 {
		t.Errorf("alpha above 1 not clamped: %v", got)
	}
	if got := RGBA(1, 2, 3, -1); got.A != 0 {
		t.Errorf("alpha below 0 not clamped: %v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := MustHex("#8a2be2")
	got := WithAlpha(c, 0.6)
	if got.R != c.R || got.G != c.G || got.B != c.B || got.A != RGBA(0, 0, 0, 0.6).A {
		t.Errorf("WithAlpha(%v, 0.6) = %v", c, got)
	}
	if c.A != 255 {
		t.Errorf("WithAlpha modified its argument: %v", c)
	}
}

func TestHSL(t *testing.T) {
	red := HSL(0, 1, 0.5)
	if red.R != 255 || red.G != 0 || red.B != 0 {
		t.Errorf("HSL(0,1,.5) = %v, want pure red", red)
	}
	c := HSL(200, 0.7, 0.6)
	if c.A != 255 {
		t.Errorf("HSL alpha = %d, want 255", c.A)
	}
}

func TestGradientValidate(t *testing.T) {
	black, white := MustHex("#000000"), MustHex("#ffffff")
	tests := []struct {
		name    string
		g       Gradient
		wantErr bool
	}{
		{"two stops", LinearGradient(Pt(0, 0), Pt(1, 1), Stop{0, black}, Stop{1, white}), false},
		{"three stops", LinearGradient(Pt(0, 0), Pt(1, 0), Stop{0, black}, Stop{0.5, white}, Stop{1, black}), false},
		{"radial", RadialGradient(Pt(0.5, 0.5), 0, 0.5, Stop{0, black}, Stop{1, white}), false},

		{"one stop", LinearGradient(Pt(0, 0), Pt(1, 1), Stop{0, black}), true},
		{"first not zero", LinearGradient(Pt(0, 0), Pt(1, 1), Stop{0.1, black}, Stop{1, white}), true},
		{"last not one", LinearGradient(Pt(0, 0), Pt(1, 1), Stop{0, black}, Stop{0.9, white}), true},
		{"not increasing", LinearGradient(Pt(0, 0), Pt(1, 1), Stop{0, black}, Stop{0.5, white}, Stop{0.5, black}, Stop{1, white}), true},
		{"radial inverted radii", RadialGradient(Pt(0.5, 0.5), 0.5, 0.2, Stop{0, black}, Stop{1, white}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidStyle) {
				t.Errorf("Validate() code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidStyle)
			}
		})
	}
}

func TestGradientResolve(t *testing.T) {
	g := RadialGradient(Pt(0.5, 0.5), 0, 0.5)
	geo := g.Resolve(800, 600)
	want := Geometry{X0: 400, Y0: 300, R0: 0, X1: 400, Y1: 300, R1: 400}
	if geo != want {
		t.Errorf("Resolve() = %+v, want %+v", geo, want)
	}
}

func TestCommandModifiersCopy(t *testing.T) {
	base := Circle(Pt(10, 10), 5)
	filled := base.Filled(RGBA(255, 0, 0, 1)).As(RoleNode)

	if base.HasFill() || base.Role != RoleNone {
		t.Error("modifiers must not change the receiver")
	}
	if !filled.HasFill() || filled.Role != RoleNode {
		t.Errorf("filled = %+v", filled)
	}
	if filled.HasStroke() || filled.HasGlow() {
		t.Error("fill-only command reports stroke or glow")
	}
	glowing := filled.Glowing(RGBA(255, 0, 0, 0.8), 10)
	if !glowing.HasGlow() || filled.HasGlow() {
		t.Error("Glowing must only affect the copy")
	}
}

func TestPolygonCopiesPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	c := Polygon(pts...)
	pts[0] = Pt(9, 9)
	if c.Points[0] != Pt(0, 0) {
		t.Error("Polygon must not alias the caller's slice")
	}
}

func TestCommandBounds(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want Rect
	}{
		{"circle", Circle(Pt(10, 20), 5), Rect{5, 15, 10, 10}},
		{"rect", Rectangle(1, 2, 20, 15), Rect{1, 2, 20, 15}},
		{"line", Line(Pt(10, 0), Pt(0, 10)), Rect{0, 0, 10, 10}},
		{"stroked line", Line(Pt(0, 0), Pt(10, 0)).Stroked(RGBA(0, 0, 0, 1), 2), Rect{-1, -1, 12, 2}},
		{"cubic hull", Cubic(Pt(0, 5), Pt(3, 0), Pt(7, 10), Pt(10, 5)), Rect{0, 0, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindText.String() != "text" || Kind(99).String() != "unknown" {
		t.Errorf("unexpected kind names %q %q", KindText, Kind(99))
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if rec.Center() != Pt(400, 300) {
		t.Errorf("Center() = %v", rec.Center())
	}
	rec.Add(
		Line(Pt(0, 0), Pt(1, 1)).As(RoleConnection),
		Line(Pt(0, 0), Pt(2, 2)).As(RoleConnection),
		Circle(Pt(0, 0), 1).As(RoleNode),
	)
	s := rec.Scene(Gradient{})
	rec.Add(Circle(Pt(0, 0), 1).As(RoleNode))

	if s.Width != 800 || s.Height != 600 {
		t.Errorf("scene size = %dx%d", s.Width, s.Height)
	}
	if got := s.Count(RoleConnection); got != 2 {
		t.Errorf("Count(connection) = %d, want 2", got)
	}
	if got := s.Count(RoleNode); got != 1 {
		t.Errorf("Count(node) = %d, want 1 (scene must not see later additions)", got)
	}
	if got := s.CountKind(KindLine); got != 2 {
		t.Errorf("CountKind(line) = %d, want 2", got)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(Pt(0, 0), math.Pi/2, 10)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-10) > 1e-9 {
		t.Errorf("Polar = %v, want (0,10)", p)
	}
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
}
