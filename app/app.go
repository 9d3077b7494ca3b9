package app

import (
	"errors"
	"fmt"
	"log/slog"

	"keycalc/calc"
	"keycalc/hal"
	"keycalc/internal/buildinfo"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var ErrFontMetrics = errors.New("font has no usable metrics")

// Config tunes the calculator app.
type Config struct {
	// Script is a sequence of keypad labels clicked one per frame, at the
	// centre of each button.
	Script string

	LogLevel slog.Level
	// Logger overrides the default text logger on the HAL log sink.
	Logger *slog.Logger
	// Font overrides the default monospace font.
	Font tinyfont.Fonter
}

type app struct {
	calc   *calc.Calculator
	fb     hal.Framebuffer
	surf   *fbSurface
	events <-chan hal.PointerEvent
	log    *slog.Logger

	script []string
	dirty  bool
}

// New wires the calculator to h and returns the per-frame step.
func New(h hal.HAL, cfg Config) (func() error, error) {
	a, err := newApp(h, cfg)
	if err != nil {
		return nil, err
	}
	return a.step, nil
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(hal.LogWriter(h.Logger()), &slog.HandlerOptions{Level: cfg.LogLevel}))
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	font := cfg.Font
	if font == nil {
		font = &freemono.Regular12pt7b
	}
	surf, err := newFBSurface(fb, font)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	a := &app{
		calc:  calc.New(),
		fb:    fb,
		surf:  surf,
		log:   log,
		dirty: true,
	}

	if in := h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			a.events = p.Events()
		}
	}

	for _, r := range cfg.Script {
		label := string(r)
		if _, ok := a.calc.Keypad().Button(label); !ok {
			return nil, fmt.Errorf("script: unknown key %q", label)
		}
		a.script = append(a.script, label)
	}

	log.Info("calculator ready",
		"build", buildinfo.Short(),
		"width", fb.Width(),
		"height", fb.Height(),
		"script", len(a.script))
	return a, nil
}

func (a *app) step() error {
	a.drainPointer()
	a.pressScripted()

	if !a.dirty {
		return nil
	}
	a.dirty = false
	calc.Render(a.surf, a.calc)
	return a.fb.Present()
}

func (a *app) drainPointer() {
	if a.events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				a.events = nil
				return
			}
			a.click(ev.X, ev.Y)
		default:
			return
		}
	}
}

func (a *app) pressScripted() {
	if len(a.script) == 0 {
		return
	}
	label := a.script[0]
	a.script = a.script[1:]

	b, _ := a.calc.Keypad().Button(label)
	a.click(b.Rect.Center())
}

func (a *app) click(x, y int) {
	label, ok := a.calc.Click(x, y)
	if !ok {
		a.log.Debug("click missed", "x", x, "y", y)
		return
	}
	a.dirty = true

	a.log.Debug("press", "key", label, "input", a.calc.Input())
	if label == calc.LabelEquals {
		a.log.Info("evaluate", "input", a.calc.Input(), "result", a.calc.Result())
	}
}
