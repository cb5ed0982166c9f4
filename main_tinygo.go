//go:build tinygo

package main

import (
	"uf2splash/app"
	"uf2splash/board"
	"uf2splash/hal"
)

// boardName selects the preset at build time:
//
//	tinygo flash -tags picocalc -ldflags "-X main.boardName=picocalc" ...
var boardName = "picocalc"

func main() {
	b, ok := board.Lookup(boardName)
	if !ok {
		b = board.Default()
	}
	app.Run(hal.New(b.Width, b.Height), app.Config{Board: b})
}
