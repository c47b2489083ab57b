package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/fonts"
	"github.com/matzehuels/backdrop/pkg/scene"
)

// Surface is a raster drawing target. The zero value is an empty surface
// ready for Paint. A Surface must not be used from several goroutines at
// once; concurrent renders use separate surfaces.
type Surface struct {
	dc    *gg.Context
	faces map[float64]font.Face
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if err := errs.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	s := &Surface{}
	s.reset(width, height)
	return s, nil
}

// Width returns the surface width in pixels, or 0 before the first paint.
func (s *Surface) Width() int {
	if s.dc == nil {
		return 0
	}
	return s.dc.Width()
}

// Height returns the surface height in pixels, or 0 before the first paint.
func (s *Surface) Height() int {
	if s.dc == nil {
		return 0
	}
	return s.dc.Height()
}

// Image returns the current pixels. The image is owned by the surface and
// changes on the next paint.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.dc.Image()
}

// reset makes the surface width x height and fully transparent. The
// backing context is reused when the size is unchanged.
func (s *Surface) reset(width, height int) {
	if s.dc == nil || s.dc.Width() != width || s.dc.Height() != height {
		s.dc = gg.NewContext(width, height)
		return
	}
	s.dc.Identity()
	s.dc.ResetClip()
	s.dc.ClearPath()
	s.dc.SetRGBA(0, 0, 0, 0)
	s.dc.Clear()
}

// Paint replaces the surface contents with sc: clear, background, commands.
// Fonts are loaded before anything is drawn so a failure leaves the
// surface unchanged.
func (s *Surface) Paint(sc scene.Scene) error {
	if err := errs.ValidateDimensions(sc.Width, sc.Height); err != nil {
		return err
	}
	if err := sc.Background.Validate(); err != nil {
		return err
	}
	if err := s.loadFaces(sc.Commands); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "load fonts")
	}

	s.reset(sc.Width, sc.Height)
	s.fillBackground(sc.Background)
	for _, c := range sc.Commands {
		s.apply(c)
	}
	return nil
}

// loadFaces makes sure a face exists for every text size in cmds.
func (s *Surface) loadFaces(cmds []scene.Command) error {
	for _, c := range cmds {
		if c.Kind != scene.KindText {
			continue
		}
		if _, ok := s.faces[c.FontSize]; ok {
			continue
		}
		face, err := fonts.Mono(c.FontSize)
		if err != nil {
			return err
		}
		if s.faces == nil {
			s.faces = make(map[float64]font.Face)
		}
		s.faces[c.FontSize] = face
	}
	return nil
}

func (s *Surface) fillBackground(bg scene.Gradient) {
	w, h := float64(s.dc.Width()), float64(s.dc.Height())
	g := bg.Resolve(w, h)

	var grad gg.Gradient
	switch bg.Kind {
	case scene.Radial:
		grad = gg.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	default:
		grad = gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	}
	for _, st := range bg.Stops {
		grad.AddColorStop(st.Offset, st.Color)
	}

	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, w, h)
	s.dc.Fill()
}

// apply draws one command, glow first. Drawing state is saved and restored
// around every command so no colour or width leaks into the next one.
func (s *Surface) apply(c scene.Command) {
	if c.HasGlow() {
		s.glow(c)
	}
	s.dc.Push()
	defer s.dc.Pop()
	draw(s.dc, c, s.faces[c.FontSize])
}

// glow paints c's halo: the shape in the glow colour, blurred, under c.
func (s *Surface) glow(c scene.Command) {
	sigma := c.Glow.Blur / 2
	pad := math.Ceil(3 * sigma)
	b := c.Bounds().Grow(pad)
	x0, y0 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	w := int(math.Ceil(b.X+b.W)) - x0
	h := int(math.Ceil(b.Y+b.H)) - y0
	if w <= 0 || h <= 0 || w > errs.MaxDimension || h > errs.MaxDimension {
		return
	}

	halo := c
	if halo.HasFill() {
		halo.Fill = c.Glow.Color
	}
	if halo.HasStroke() {
		halo.Stroke = c.Glow.Color
	}

	layer := gg.NewContext(w, h)
	layer.Translate(float64(-x0), float64(-y0))
	draw(layer, halo, s.faces[c.FontSize])
	s.dc.DrawImage(blur(layer.Image(), sigma), x0, y0)
}

// blur softens a halo layer with a Gaussian of the given sigma.
func blur(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return imaging.Blur(img, sigma)
}

// draw traces c on dc and paints its fill then its stroke.
func draw(dc *gg.Context, c scene.Command, face font.Face) {
	if c.Kind == scene.KindText {
		if face == nil || !c.HasFill() {
			return
		}
		p := c.Points[0]
		dc.SetFontFace(face)
		dc.SetColor(c.Fill)
		dc.DrawString(c.Text, p.X, p.Y)
		return
	}

	trace(dc, c)
	if c.HasFill() && c.Kind != scene.KindLine {
		dc.SetColor(c.Fill)
		dc.FillPreserve()
	}
	if c.HasStroke() {
		dc.SetColor(c.Stroke)
		dc.SetLineWidth(c.LineWidth)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

// trace builds the path for a non-text command.
func trace(dc *gg.Context, c scene.Command) {
	p := c.Points
	switch c.Kind {
	case scene.KindLine:
		dc.MoveTo(p[0].X, p[0].Y)
		dc.LineTo(p[1].X, p[1].Y)
	case scene.KindQuad:
		dc.MoveTo(p[0].X, p[0].Y)
		dc.QuadraticTo(p[1].X, p[1].Y, p[2].X, p[2].Y)
	case scene.KindCubic:
		dc.MoveTo(p[0].X, p[0].Y)
		dc.CubicTo(p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	case scene.KindCircle:
		dc.DrawCircle(p[0].X, p[0].Y, c.Radius)
	case scene.KindRect:
		dc.DrawRectangle(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
	case scene.KindPolygon:
		if len(p) == 0 {
			return
		}
		dc.MoveTo(p[0].X, p[0].Y)
		for _, q := range p[1:] {
			dc.LineTo(q.X, q.Y)
		}
		dc.ClosePath()
	}
}

// WritePNG encodes the current pixels as PNG to w.
func (s *Surface) WritePNG(w io.Writer) error {
	if s.dc == nil {
		return errs.New(errs.ErrCodeExport, "surface is empty")
	}
	if err := s.dc.EncodePNG(w); err != nil {
		return errs.Wrap(errs.ErrCodeExport, err, "encode png")
	}
	return nil
}

// Snapshot returns the current pixels as PNG bytes.
func (s *Surface) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String describes the surface for logs.
func (s *Surface) String() string {
	return fmt.Sprintf("surface %dx%d", s.Width(), s.Height())
}
