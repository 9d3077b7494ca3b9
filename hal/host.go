package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ScreenConfig sizes the host framebuffer.
type ScreenConfig struct {
	Width  int
	Height int
}

func (c ScreenConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.Width, c.Height)
	}
	return nil
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	ScreenConfig
	Title string
	Scale int
	TPS   int
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	ptr    *hostPointer
}

// New returns a host HAL implementation that logs to stdout.
func New(screen ScreenConfig) (HAL, error) {
	return newHost(screen, os.Stdout)
}

func newHost(screen ScreenConfig, logOut io.Writer) (*hostHAL, error) {
	if err := screen.validate(); err != nil {
		return nil, err
	}
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(screen.Width, screen.Height),
		ptr:    newHostPointer(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
