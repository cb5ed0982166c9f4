//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HostConfig describes the simulated panel of the host runners.
type HostConfig struct {
	Width  int
	Height int

	// Zoom scales the preview window.
	Zoom int
	// Hz is the step rate.
	Hz    int
	Title string

	// Log receives log lines. Nil means stdout.
	Log io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.Title == "" {
		c.Title = "uf2splash"
	}
	return c
}

func (c HostConfig) logOutput() io.Writer {
	if c.Log == nil {
		return os.Stdout
	}
	return c.Log
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Ticks stops the runner after N steps (0 = run until cancelled).
	Ticks uint64
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hc HeadlessConfig) error {
	cfg = cfg.withDefaults()

	h := newHost(cfg.Width, cfg.Height, cfg.logOutput())
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				return nil
			}
		}
	}
}
