package app

import (
	"image/color"

	"keycalc/calc"
	"keycalc/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// metricsSample covers every glyph the calculator prints.
const metricsSample = "0123456789+-*/=.CInputRsl:Eraf"

// fbSurface draws the calculator onto an RGB565 framebuffer.
type fbSurface struct {
	fb     hal.Framebuffer
	font   tinyfont.Fonter
	ascent int16
}

func newFBSurface(fb hal.Framebuffer, font tinyfont.Fonter) (*fbSurface, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, hal.ErrNoFramebuffer
	}
	ascent, err := fontAscent(font)
	if err != nil {
		return nil, err
	}
	return &fbSurface{fb: fb, font: font, ascent: ascent}, nil
}

// fontAscent returns the distance from the top of the tallest sample glyph to
// the baseline, so text can be placed by its top-left corner.
func fontAscent(font tinyfont.Fonter) (int16, error) {
	if font == nil {
		return 0, ErrFontMetrics
	}
	var ascent int
	for _, r := range metricsSample {
		if a := -int(font.GetGlyph(r).Info().YOffset); a > ascent {
			ascent = a
		}
	}
	if ascent <= 0 {
		return 0, ErrFontMetrics
	}
	return int16(ascent), nil
}

func (s *fbSurface) Clear(c color.RGBA) {
	s.fb.ClearRGB(c.R, c.G, c.B)
}

func (s *fbSurface) FillRect(r calc.Rect, c color.RGBA) {
	x0, y0, x1, y1, ok := s.clip(r)
	if !ok {
		return
	}
	buf := s.fb.Buffer()
	stride := s.fb.StrideBytes()
	pixel := hal.RGB565(c.R, c.G, c.B)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			putRGB565(buf, y*stride+x*2, pixel)
		}
	}
}

func (s *fbSurface) StrokeRect(r calc.Rect, c color.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1
	s.FillRect(calc.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	s.FillRect(calc.Rect{X: r.X, Y: bottom, W: r.W, H: 1}, c)
	s.FillRect(calc.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	s.FillRect(calc.Rect{X: right, Y: r.Y, W: 1, H: r.H}, c)
}

func (s *fbSurface) DrawText(x, y int, text string, c color.RGBA) {
	d := &fbDisplayer{fb: s.fb}
	tinyfont.WriteLine(d, s.font, int16(x), int16(y)+s.ascent, text, c)
}

// clip intersects r with the framebuffer and returns the half-open pixel span.
func (s *fbSurface) clip(r calc.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = max(r.X, 0), max(r.Y, 0)
	x1, y1 = min(r.X+r.W, s.fb.Width()), min(r.Y+r.H, s.fb.Height())
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func putRGB565(buf []byte, off int, pixel uint16) {
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// fbDisplayer lets tinyfont rasterise glyphs straight into the framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	putRGB565(d.fb.Buffer(), iy*d.fb.StrideBytes()+ix*2, hal.RGB565(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }
