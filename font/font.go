// Package font provides the 6x8 bitmap font used by the splash screen.
package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// GlyphWidth is the cell width in columns. The last column is blank.
	GlyphWidth = 6
	// GlyphHeight is the cell height in rows.
	GlyphHeight = 8

	// First is the code point of the first glyph in the table.
	First = 0x20
	// Last is the code point of the last glyph in the table.
	Last = 0x7e

	// Fallback replaces runes the table does not cover.
	Fallback = '?'
)

// Font is a fixed-cell column-major bitmap font. Each glyph is GlyphWidth
// bytes, one per column, bit 0 at the top.
type Font struct {
	data []byte
}

// Default is the built-in printable ASCII font.
var Default = &Font{data: glyphData[:]}

// New wraps raw glyph data starting at First. Trailing bytes that do not
// form a whole glyph are ignored.
func New(data []byte) *Font {
	n := len(data) / GlyphWidth * GlyphWidth
	return &Font{data: data[:n]}
}

// Len returns the number of glyphs.
func (f *Font) Len() int { return len(f.data) / GlyphWidth }

// Glyph returns the column bytes for r. Runes below First or at/above
// 0x7f render as Fallback. Runes inside that range that the table does
// not hold return nil.
func (f *Font) Glyph(r rune) []byte {
	if r < First || r > Last {
		r = Fallback
	}
	i := int(r-First) * GlyphWidth
	if i+GlyphWidth > len(f.data) {
		return nil
	}
	return f.data[i : i+GlyphWidth : i+GlyphWidth]
}

// Fonter returns a tinyfont view of f with the given line advance. The
// returned value reuses one glyph and is not safe for concurrent use.
func (f *Font) Fonter(yAdvance uint8) tinyfont.Fonter {
	return &fonter{font: f, yAdvance: yAdvance}
}

type fonter struct {
	font     *Font
	yAdvance uint8
	g        glyph
}

func (f *fonter) GetYAdvance() uint8 { return f.yAdvance }

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g = glyph{r: r, cols: f.font.Glyph(r)}
	return &f.g
}

type glyph struct {
	r    rune
	cols []byte
}

// Draw paints the glyph with y as the baseline (the bottom row).
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for col, bits := range g.cols {
		for row := 0; row < GlyphHeight; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(GlyphHeight-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphWidth,
		Height:   GlyphHeight,
		XAdvance: GlyphWidth,
		XOffset:  0,
		YOffset:  -(GlyphHeight - 1),
	}
}
