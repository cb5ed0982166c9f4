package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"uf2splash/icon"
)

var (
	ink   = color.Gray{Y: 0x00}
	paper = color.Gray{Y: 0xff}
)

// fromImage sets a bitmap pixel for every opaque dark pixel of img.
func fromImage(img image.Image) (*icon.Bitmap, error) {
	b := img.Bounds()
	if b.Dx() > icon.MaxSide || b.Dy() > icon.MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", icon.ErrTooLarge, b.Dx(), b.Dy())
	}
	bm := icon.NewBitmap(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			bm.Set(x-b.Min.X, y-b.Min.Y, a >= 0x8000 && g.Y < 0x80)
		}
	}
	return bm, nil
}

// toImage renders bm as black ink on white paper.
func toImage(bm *icon.Bitmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, bm.Width, bm.Height))
	for x := 0; x < bm.Width; x++ {
		for y := 0; y < bm.Height; y++ {
			c := paper
			if bm.At(x, y) {
				c = ink
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}

func readPNG(path string) (*icon.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fromImage(img)
}
