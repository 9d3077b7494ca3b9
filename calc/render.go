package calc

import "image/color"

// Surface is the drawing target of the calculator UI.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y int, s string, c color.RGBA)
}

var (
	ColorBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorButton     = color.RGBA{R: 200, G: 200, B: 200, A: 0xFF}
	ColorInk        = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}
)

const (
	textX       = 20
	inputLineY  = 50
	resultLineY = 100
	labelInset  = 30
)

// Render draws one full frame of c onto s.
func Render(s Surface, c *Calculator) {
	s.Clear(ColorBackground)

	s.DrawText(textX, inputLineY, "Input: "+c.Input(), ColorInk)
	s.DrawText(textX, resultLineY, "Result: "+c.Result(), ColorInk)

	keys := c.Keypad()
	for i := 0; i < keys.Len(); i++ {
		b := keys.At(i)
		s.FillRect(b.Rect, ColorButton)
		s.StrokeRect(b.Rect, ColorInk)
		s.DrawText(b.Rect.X+labelInset, b.Rect.Y+labelInset, b.Label, ColorInk)
	}
}
