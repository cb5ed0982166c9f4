// Package palette holds the fixed 16-entry colour table of the splash screen.
//
// Framebuffer pixels are 4-bit indices into this table; the display
// transport expands them to RGB565 right before a line is sent.
package palette

import "image/color"

// Named indices. 11..15 are unused by the splash screen.
const (
	Black uint8 = iota
	White
	Red
	Pink
	Orange
	Yellow
	Cyan
	Green
	Blue
	Aqua
	Purple
)

// Size is the number of palette entries.
const Size = 16

var rgb888 = [Size]uint32{
	0x000000, // Black
	0xffffff, // White
	0xff2121, // Red
	0xff93c4, // Pink
	0xff8135, // Orange
	0xfff609, // Yellow
	0x249ca3, // Cyan
	0x78dc52, // Green
	0x003fad, // Blue
	0x87f2ff, // Aqua
	0x8e2ec4, // Purple

	0xa4839f,
	0x5c406c,
	0xe5cdc4,
	0x91463d,
	0x000000,
}

var table = func() (t [Size]uint16) {
	for i, c := range rgb888 {
		t[i] = RGB565(uint8(c>>16), uint8(c>>8), uint8(c))
	}
	return t
}()

// Palette is the table as a color.Palette, in index order.
var Palette = func() color.Palette {
	p := make(color.Palette, Size)
	for i := range p {
		p[i] = RGBA(uint8(i))
	}
	return p
}()

// RGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// ColorOf returns the RGB565 value of index. Only the low 4 bits are used.
func ColorOf(index uint8) uint16 {
	return table[index&0x0F]
}

// RGBA expands the RGB565 entry of index back to 8-bit channels.
func RGBA(index uint8) color.RGBA {
	return Expand565(ColorOf(index))
}

// Expand565 widens an RGB565 value to opaque 8-bit channels, mapping each
// channel's maximum to 0xFF.
func Expand565(p uint16) color.RGBA {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return color.RGBA{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}

// Index returns the palette entry closest to c.
func Index(c color.Color) uint8 {
	return uint8(Palette.Index(c))
}
