package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressAll(t *testing.T, c *Calculator, labels ...string) {
	t.Helper()
	for _, l := range labels {
		require.True(t, c.Press(l), "Press(%q)", l)
	}
}

func TestPressConcatenates(t *testing.T) {
	c := New()
	pressAll(t, c, "1", "2", "+", "3")

	assert.Equal(t, "12+3", c.Input())
	assert.Empty(t, c.Result())
}

func TestPressEquals(t *testing.T) {
	c := New()
	pressAll(t, c, "1", "2", "+", "3", "=")
	assert.Equal(t, "12+3", c.Input())
	assert.Equal(t, "15.000000", c.Result())

	pressAll(t, c, "=")
	assert.Equal(t, "12+3", c.Input())
	assert.Equal(t, "15.000000", c.Result())
}

func TestPressEqualsMalformed(t *testing.T) {
	c := New()
	pressAll(t, c, "5", "+", "=")
	assert.Equal(t, ErrToken, c.Result())

	c.Reset()
	pressAll(t, c, "=")
	assert.Equal(t, ErrToken, c.Result())
}

func TestStaleResultAfterAppend(t *testing.T) {
	c := New()
	pressAll(t, c, "8", "/", "2", "=", "4")

	assert.Equal(t, "8/24", c.Input())
	assert.Equal(t, "4.000000", c.Result())
}

func TestPressClear(t *testing.T) {
	states := [][]string{
		nil,
		{"1"},
		{"9", "*", "9", "="},
		{"+", "="},
	}
	for _, seq := range states {
		c := New()
		pressAll(t, c, seq...)
		pressAll(t, c, LabelClear)
		assert.Empty(t, c.Input(), "after %v", seq)
		assert.Empty(t, c.Result(), "after %v", seq)
	}
}

func TestPressUnknownLabel(t *testing.T) {
	c := New()
	pressAll(t, c, "4")

	for _, l := range []string{"", "%", "12", "x", "CE"} {
		assert.False(t, c.Press(l), "Press(%q)", l)
	}
	assert.Equal(t, "4", c.Input())
	assert.Empty(t, c.Result())
}

func TestClick(t *testing.T) {
	c := New()
	click := func(label string) {
		b, ok := c.Keypad().Button(label)
		require.True(t, ok, label)
		x, y := b.Rect.Center()
		got, ok := c.Click(x, y)
		require.True(t, ok, label)
		require.Equal(t, label, got)
	}

	for _, l := range []string{"7", "*", "6", "="} {
		click(l)
	}
	assert.Equal(t, "7*6", c.Input())
	assert.Equal(t, "42.000000", c.Result())

	click("C")
	assert.Empty(t, c.Input())
	assert.Empty(t, c.Result())
}

func TestClickOutsideIsNoop(t *testing.T) {
	c := New()
	pressAll(t, c, "3", "-", "1", "=")

	for _, p := range [][2]int{{0, 0}, {105, 190}, {60, 235}, {399, 549}, {20, 50}, {-5, 300}} {
		label, ok := c.Click(p[0], p[1])
		assert.False(t, ok, "Click(%d, %d)", p[0], p[1])
		assert.Empty(t, label)
	}
	assert.Equal(t, "3-1", c.Input())
	assert.Equal(t, "2.000000", c.Result())
}
