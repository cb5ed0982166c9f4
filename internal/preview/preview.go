// Package preview exports rendered screens as PNG images.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// MaxZoom bounds the zoom factor.
const MaxZoom = 16

var errNilImage = errors.New("preview: nil image")

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping pixel edges sharp.
func Scale(img image.Image, zoom int) (image.Image, error) {
	if img == nil {
		return nil, errNilImage
	}
	if zoom < 1 || zoom > MaxZoom {
		return nil, fmt.Errorf("preview: zoom %d outside 1..%d", zoom, MaxZoom)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Encode writes img to w as PNG, zoomed by zoom.
func Encode(w io.Writer, img image.Image, zoom int) error {
	scaled, err := Scale(img, zoom)
	if err != nil {
		return err
	}
	if err := png.Encode(w, scaled); err != nil {
		return fmt.Errorf("preview: encode: %w", err)
	}
	return nil
}

// WriteFile writes img to path as PNG.
func WriteFile(path string, img image.Image, zoom int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := Encode(f, img, zoom); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
