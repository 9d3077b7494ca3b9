package calc

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) Clear(c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("clear %v", c))
}

func (s *recordingSurface) FillRect(r Rect, c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("fill %v %v", r, c))
}

func (s *recordingSurface) StrokeRect(r Rect, c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("stroke %v %v", r, c))
}

func (s *recordingSurface) DrawText(x, y int, text string, c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("text %d,%d %q", x, y, text))
}

func TestRenderFrame(t *testing.T) {
	c := New()
	require.True(t, c.Press("9"))
	require.True(t, c.Press("-"))
	require.True(t, c.Press("4"))
	require.True(t, c.Press("="))

	s := &recordingSurface{}
	Render(s, c)

	require.Len(t, s.ops, 3+3*16)
	assert.Equal(t, fmt.Sprintf("clear %v", ColorBackground), s.ops[0])
	assert.Equal(t, `text 20,50 "Input: 9-4"`, s.ops[1])
	assert.Equal(t, `text 20,100 "Result: 5.000000"`, s.ops[2])

	first := ButtonRect(0)
	assert.Equal(t, fmt.Sprintf("fill %v %v", first, ColorButton), s.ops[3])
	assert.Equal(t, fmt.Sprintf("stroke %v %v", first, ColorInk), s.ops[4])
	assert.Equal(t, `text 50,180 "7"`, s.ops[5])

	assert.Equal(t, `text 320,450 "+"`, s.ops[len(s.ops)-1])
}

func TestRenderEmpty(t *testing.T) {
	s := &recordingSurface{}
	Render(s, New())

	assert.Equal(t, `text 20,50 "Input: "`, s.ops[1])
	assert.Equal(t, `text 20,100 "Result: "`, s.ops[2])
}
