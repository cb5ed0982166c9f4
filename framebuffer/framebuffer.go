// Package framebuffer implements the indexed, column-major pixel buffer the
// splash screen is rendered into.
//
// One byte holds one palette index. Pixels of a column are contiguous
// (pix[x*height+y]) so a column is exactly one line of the display
// transport.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"uf2splash/palette"
)

// MaxPixels bounds a single allocation. Larger requests fail with ErrAlloc.
const MaxPixels = 1 << 20

// ErrAlloc is returned when a framebuffer cannot be allocated.
var ErrAlloc = errors.New("framebuffer: allocation failed")

// Framebuffer is a width x height grid of palette indices.
//
// Writes outside the grid are dropped and counted; see Clipped.
type Framebuffer struct {
	w   int
	h   int
	pix []byte

	clipped int
}

// New allocates a zeroed (black) framebuffer.
func New(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrAlloc, w, h)
	}
	if w > MaxPixels/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAlloc, w, h, MaxPixels)
	}
	return &Framebuffer{w: w, h: h, pix: make([]byte, w*h)}, nil
}

func (f *Framebuffer) Width() int  { return f.w }
func (f *Framebuffer) Height() int { return f.h }

// Clipped reports how many pixel writes fell outside the grid.
func (f *Framebuffer) Clipped() int { return f.clipped }

// In reports whether (x, y) is inside the grid.
func (f *Framebuffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.w && y < f.h
}

// Index returns the palette index at (x, y), or 0 outside the grid.
func (f *Framebuffer) Index(x, y int) uint8 {
	if !f.In(x, y) {
		return 0
	}
	return f.pix[x*f.h+y]
}

// Set writes c at (x, y). It returns false, and counts the write as
// clipped, when (x, y) is outside the grid.
func (f *Framebuffer) Set(x, y int, c uint8) bool {
	if !f.In(x, y) {
		f.clipped++
		return false
	}
	f.pix[x*f.h+y] = c
	return true
}

// FillBlock paints the n x n block whose top-left corner is (x, y).
func (f *Framebuffer) FillBlock(x, y, n int, c uint8) {
	for dx := 0; dx < n; dx++ {
		px := x + dx
		if px < 0 || px >= f.w {
			f.clipped += n
			continue
		}
		col := f.pix[px*f.h : (px+1)*f.h]
		for dy := 0; dy < n; dy++ {
			py := y + dy
			if py < 0 || py >= f.h {
				f.clipped++
				continue
			}
			col[py] = c
		}
	}
}

// FillBar sets rows [y, y+h) of every column to c. Rows outside the grid
// are ignored.
func (f *Framebuffer) FillBar(y, h int, c uint8) {
	y0, y1 := y, y+h
	if y0 < 0 {
		y0 = 0
	}
	if y1 > f.h {
		y1 = f.h
	}
	if y0 >= y1 {
		return
	}
	for x := 0; x < f.w; x++ {
		col := f.pix[x*f.h+y0 : x*f.h+y1]
		for i := range col {
			col[i] = c
		}
	}
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c uint8) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Column returns the height bytes of column x. The slice aliases the
// framebuffer.
func (f *Framebuffer) Column(x int) []byte {
	if x < 0 || x >= f.w {
		return nil
	}
	return f.pix[x*f.h : (x+1)*f.h]
}

var _ image.Image = (*Framebuffer)(nil)

func (f *Framebuffer) ColorModel() color.Model { return palette.Palette }

func (f *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

func (f *Framebuffer) At(x, y int) color.Color {
	return palette.RGBA(f.Index(x, y))
}
