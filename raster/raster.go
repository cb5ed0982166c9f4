// Package raster draws glyphs, icons and text into a framebuffer.
//
// Every primitive scales by an integer factor: one source pixel becomes a
// scale x scale block. Callers are expected to keep drawing inside the
// framebuffer; anything that falls outside is clipped and counted by the
// framebuffer.
package raster

import (
	"uf2splash/font"
	"uf2splash/framebuffer"
	"uf2splash/icon"
)

// LineHeight is the vertical advance of a newline at scale 1.
const LineHeight = 10

func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	return scale
}

// DrawGlyph paints the set bits of glyph, one byte per column with bit 0
// at the top, with (x, y) as the top-left corner. Clear bits are left
// untouched. Only the columns present in glyph are drawn.
func DrawGlyph(fb *framebuffer.Framebuffer, x, y int, c uint8, scale int, glyph []byte) {
	scale = clampScale(scale)
	if len(glyph) > font.GlyphWidth {
		glyph = glyph[:font.GlyphWidth]
	}
	for col, bits := range glyph {
		if bits == 0 {
			continue
		}
		for row := 0; row < font.GlyphHeight; row++ {
			if bits&(1<<row) != 0 {
				fb.FillBlock(x+col*scale, y+row*scale, scale, c)
			}
		}
	}
}

// DrawIcon paints the set pixels of bm with (x, y) as the top-left corner.
func DrawIcon(fb *framebuffer.Framebuffer, x, y int, c uint8, scale int, bm *icon.Bitmap) {
	scale = clampScale(scale)
	for col := 0; col < bm.Width; col++ {
		for row := 0; row < bm.Height; row++ {
			if bm.At(col, row) {
				fb.FillBlock(x+col*scale, y+row*scale, scale, c)
			}
		}
	}
}

// DrawIconData decodes an encoded icon and draws it. Nothing is drawn when
// decoding fails.
func DrawIconData(fb *framebuffer.Framebuffer, x, y int, c uint8, scale int, data []byte) error {
	bm, err := icon.Decode(data)
	if err != nil {
		return err
	}
	DrawIcon(fb, x, y, c, scale, bm)
	return nil
}

// Advance returns the horizontal distance between glyphs at scale.
// Neighbouring cells overlap by scale-1 columns.
func Advance(scale int) int {
	return 5*clampScale(scale) + 1
}

// TextWidth returns the advance-based width of s at scale.
func TextWidth(scale int, s string) int {
	n := 0
	for range s {
		n++
	}
	return n * Advance(scale)
}

// DrawText draws s starting at (x, y) and returns the number of glyphs
// drawn.
//
// At scale 1 a '\n' returns to x and moves down LineHeight pixels and '\r'
// is ignored. Larger scales treat both as ordinary characters and stop
// before the first glyph whose cell would cross the right edge.
func DrawText(fb *framebuffer.Framebuffer, f *font.Font, x, y int, c uint8, scale int, s string) int {
	scale = clampScale(scale)
	x0 := x
	n := 0
	for _, r := range s {
		if scale == 1 {
			switch r {
			case '\r':
				continue
			case '\n':
				x = x0
				y += LineHeight
				continue
			}
		} else if x+font.GlyphWidth*scale > fb.Width() {
			break
		}
		DrawGlyph(fb, x, y, c, scale, f.Glyph(r))
		x += Advance(scale)
		n++
	}
	return n
}
