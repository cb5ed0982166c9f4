//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"uf2splash/app"
	"uf2splash/board"
	"uf2splash/hal"
)

func main() {
	var (
		hc       hal.HeadlessConfig
		boardArg string
		cfgPath  string
		version  string
		pngPath  string
		zoom     int
	)
	flag.StringVar(&boardArg, "board", board.DefaultName, "Board preset ("+strings.Join(board.Names(), ", ")+").")
	flag.StringVar(&cfgPath, "config", "", "YAML board file (overrides -board).")
	flag.StringVar(&version, "version", "", "Version string shown under the title (default: build version).")
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&hc.Ticks, "ticks", 1, "Stop after N steps in headless mode (0 = run forever).")
	flag.StringVar(&pngPath, "png", "", "Write the rendered screen to this PNG file.")
	flag.IntVar(&zoom, "zoom", 2, "Zoom factor for the window and the PNG.")
	flag.Parse()

	b, err := loadBoard(boardArg, cfgPath)
	if err != nil {
		fatalf("%v", err)
	}
	if version != "" {
		b.Version = version
	}

	hostCfg := hal.HostConfig{
		Width:  b.Width,
		Height: b.Height,
		Zoom:   zoom,
		Title:  "uf2splash " + b.Name,
	}
	cfg := app.Config{Board: b, PNG: pngPath, Zoom: zoom, ExitOnError: hc.Enabled}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hostCfg, newApp, hc); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(hostCfg, newApp); err != nil {
		fatalf("%v", err)
	}
}

func loadBoard(name, path string) (board.Config, error) {
	if path != "" {
		return board.Load(path)
	}
	b, ok := board.Lookup(name)
	if !ok {
		return board.Config{}, fmt.Errorf("unknown board %q (have %s)", name, strings.Join(board.Names(), ", "))
	}
	return b, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
