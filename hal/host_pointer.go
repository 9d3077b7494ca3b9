//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan PointerEvent
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// poll must run on the ebiten game loop. Cursor positions are already in
// framebuffer coordinates because Layout reports the framebuffer size.
func (p *hostPointer) poll() {
	emit := func(b ebiten.MouseButton, button PointerButton) {
		if !inpututil.IsMouseButtonJustPressed(b) {
			return
		}
		x, y := ebiten.CursorPosition()
		select {
		case p.ch <- PointerEvent{X: x, Y: y, Button: button}:
		default:
		}
	}

	emit(ebiten.MouseButtonLeft, PointerLeft)
	emit(ebiten.MouseButtonRight, PointerRight)
}
