package hal

import (
	"fmt"
	"image"
	"sync"

	"uf2splash/palette"
)

// memPanel keeps the panel contents in memory as row-major little-endian
// RGB565, the layout the preview window reads.
type memPanel struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	lines  int
}

func newMemPanel(width, height int) *memPanel {
	stride := width * 2
	return &memPanel{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (p *memPanel) Width() int  { return p.width }
func (p *memPanel) Height() int { return p.height }

func (p *memPanel) WriteLine(line int, pixels []byte) error {
	if line < 0 || line >= p.width {
		return fmt.Errorf("%w: index %d outside 0..%d", ErrLine, line, p.width-1)
	}
	if len(pixels) != 2*p.height {
		return fmt.Errorf("%w: %d bytes, want %d", ErrLine, len(pixels), 2*p.height)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	off := line * 2
	for y := 0; y < p.height; y++ {
		// Big-endian on the wire, little-endian in the store.
		p.buf[off] = pixels[2*y+1]
		p.buf[off+1] = pixels[2*y]
		off += p.stride
	}
	p.lines++
	return nil
}

// Lines returns how many lines were written since the panel was created.
func (p *memPanel) Lines() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lines
}

func (p *memPanel) pixel(x, y int) uint16 {
	off := y*p.stride + x*2
	return uint16(p.buf[off]) | uint16(p.buf[off+1])<<8
}

// RGB565 returns the stored value at (x, y).
func (p *memPanel) RGB565(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0
	}
	return p.pixel(x, y)
}

func (p *memPanel) snapshotRGB565(dst []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.buf)
}

// Image returns a copy of the panel contents.
func (p *memPanel) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.mu.Lock()
	defer p.mu.Unlock()
	expandRGB565(img.Pix, p.buf)
	return img
}

// expandRGB565 converts little-endian RGB565 src into RGBA dst.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := palette.Expand565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}
}
