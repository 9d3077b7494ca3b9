package calc

import "strings"

// Calculator holds the input buffer and the last result.
//
// The result is only refreshed by "="; appending after an evaluation leaves
// the previous result on screen until the next "=" or "C".
type Calculator struct {
	keys   Keypad
	input  strings.Builder
	result string
}

// New returns an empty calculator using the standard keypad.
func New() *Calculator {
	return &Calculator{keys: NewKeypad()}
}

// Keypad returns the button catalog used for click resolution.
func (c *Calculator) Keypad() Keypad { return c.keys }

// Input returns the accumulated expression text.
func (c *Calculator) Input() string { return c.input.String() }

// Result returns the last evaluation outcome, or "" after a reset.
func (c *Calculator) Result() string { return c.result }

// Reset clears both the input and the result.
func (c *Calculator) Reset() {
	c.input.Reset()
	c.result = ""
}

// Press applies one button label. It reports false for labels the keypad
// does not know; those leave the state untouched.
func (c *Calculator) Press(label string) bool {
	switch {
	case label == LabelClear:
		c.Reset()
	case label == LabelEquals:
		c.result = Evaluate(c.input.String())
	case isAppendLabel(label):
		c.input.WriteString(label)
	default:
		return false
	}
	return true
}

// Click resolves (x, y) against the keypad and presses the hit button.
// Clicks outside every button are ignored.
func (c *Calculator) Click(x, y int) (string, bool) {
	b, ok := c.keys.Hit(x, y)
	if !ok {
		return "", false
	}
	return b.Label, c.Press(b.Label)
}

func isAppendLabel(label string) bool {
	if len(label) != 1 {
		return false
	}
	switch ch := label[0]; {
	case isDigit(ch):
		return true
	case ch == '+', ch == '-', ch == '*', ch == '/':
		return true
	}
	return false
}
