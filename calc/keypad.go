package calc

// Window and keypad geometry in pixels.
const (
	ScreenWidth  = 400
	ScreenHeight = 550

	ButtonWidth  = 80
	ButtonHeight = 80
	ButtonMargin = 10

	gridX    = 20
	gridY    = 150
	gridCols = 4
)

// Button labels with a special meaning. Every other label is appended verbatim.
const (
	LabelEquals = "="
	LabelClear  = "C"
)

// Labels is the keypad catalog order, row by row.
var Labels = [...]string{
	"7", "8", "9", "/",
	"4", "5", "6", "*",
	"1", "2", "3", "-",
	"C", "0", "=", "+",
}

// Rect is an axis-aligned hit region.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether (x, y) lies in r. All four edges are inclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Center returns the middle point of r.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ButtonRect returns the hit region of the button at catalog index i.
func ButtonRect(i int) Rect {
	return Rect{
		X: gridX + (i%gridCols)*(ButtonWidth+ButtonMargin),
		Y: gridY + (i/gridCols)*(ButtonHeight+ButtonMargin),
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

// ButtonSpec ties a keypad label to its hit region.
type ButtonSpec struct {
	Label string
	Rect  Rect
}

// Keypad is the immutable button catalog.
type Keypad struct {
	buttons []ButtonSpec
}

// NewKeypad lays out every label in Labels.
func NewKeypad() Keypad {
	buttons := make([]ButtonSpec, len(Labels))
	for i, label := range Labels {
		buttons[i] = ButtonSpec{Label: label, Rect: ButtonRect(i)}
	}
	return Keypad{buttons: buttons}
}

// Len returns the number of buttons.
func (k Keypad) Len() int { return len(k.buttons) }

// At returns the button at catalog index i.
func (k Keypad) At(i int) ButtonSpec { return k.buttons[i] }

// Hit returns the first button, in catalog order, whose region contains (x, y).
func (k Keypad) Hit(x, y int) (ButtonSpec, bool) {
	for _, b := range k.buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return ButtonSpec{}, false
}

// Button looks a button up by label.
func (k Keypad) Button(label string) (ButtonSpec, bool) {
	for _, b := range k.buttons {
		if b.Label == label {
			return b, true
		}
	}
	return ButtonSpec{}, false
}
