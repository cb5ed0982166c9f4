//go:build !tinygo

package app

import (
	"errors"
	"image"

	"uf2splash/hal"
	"uf2splash/internal/preview"
)

// imager is implemented by panels that can read back their contents.
type imager interface {
	Image() image.Image
}

func snapshot(panel hal.Panel, path string, zoom int) error {
	im, ok := panel.(imager)
	if !ok {
		return errors.New("png: panel cannot be read back")
	}
	if zoom <= 0 {
		zoom = 1
	}
	return preview.WriteFile(path, im.Image(), zoom)
}
