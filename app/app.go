package app

import (
	"fmt"

	"uf2splash/board"
	"uf2splash/hal"
	"uf2splash/internal/buildinfo"
	"uf2splash/screen"
)

type Config struct {
	Board board.Config

	// PNG, when set, receives a snapshot of the panel after rendering.
	PNG  string
	Zoom int

	// ExitOnError makes the step function return the render error instead
	// of leaving the fault screen up.
	ExitOnError bool
}

// New returns a step function that renders the splash screen on its first
// call. Later calls do nothing.
func New(h hal.HAL, cfg Config) func() error {
	done := false
	return func() error {
		if done {
			return nil
		}
		done = true
		err := Render(h, cfg)
		if cfg.ExitOnError {
			return err
		}
		return nil
	}
}

// Run renders the splash screen and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	_ = Render(h, cfg)
	select {}
}

// Render draws the splash screen on the HAL panel. On failure it logs the
// error and shows a fault screen instead.
func Render(h hal.HAL, cfg Config) error {
	l := h.Logger()
	b := cfg.Board
	if b.Version == "" {
		b.Version = buildinfo.Splash()
	}
	panel := h.Panel()

	res, err := render(screen.New(b), panel)
	if err != nil {
		l.WriteLineString("splash: render failed: " + err.Error())
		if ferr := showFault(panel, err); ferr != nil {
			l.WriteLineString("splash: fault screen: " + ferr.Error())
		}
		h.LED().Low()
		return err
	}
	if res.Clipped > 0 {
		l.WriteLineString(fmt.Sprintf("splash: warning: %d pixel writes outside %dx%d", res.Clipped, res.Width, res.Height))
	}
	l.WriteLineString(fmt.Sprintf("splash: rendered %s %dx%d", b.Name, res.Width, res.Height))
	h.LED().High()

	if cfg.PNG != "" {
		if err := snapshot(panel, cfg.PNG, cfg.Zoom); err != nil {
			l.WriteLineString("splash: " + err.Error())
			return err
		}
		l.WriteLineString("splash: wrote " + cfg.PNG)
	}
	return nil
}

func render(c *screen.Composer, panel hal.Panel) (res screen.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("splash: panic: %v", r)
		}
	}()
	return c.Render(panel)
}
