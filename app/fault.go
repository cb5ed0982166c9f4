package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"uf2splash/display"
	"uf2splash/font"
	"uf2splash/framebuffer"
	"uf2splash/hal"
	"uf2splash/palette"
	"uf2splash/raster"

	"tinygo.org/x/tinyfont"
)

// showFault replaces the splash screen with the error text, white on red.
func showFault(panel hal.Panel, cause error) error {
	fb, err := framebuffer.New(panel.Width(), panel.Height())
	if err != nil {
		return err
	}
	fb.Fill(palette.Red)

	d := framebuffer.AsDisplayer(fb)
	f := font.Default.Fonter(raster.LineHeight)
	fg := palette.RGBA(palette.White)

	cols := int16(fb.Width() / font.GlyphWidth)
	if cols <= 0 {
		cols = 1
	}
	lines := []string{"Splash fault:"}
	for _, line := range strings.Split(cause.Error(), ": ") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	y := int16(2)
	lineHeight := int16(f.GetYAdvance())
	maxH := int16(fb.Height())
	for _, line := range lines {
		for len(line) > 0 && y+lineHeight <= maxH {
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, f, 0, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	return display.Flush(fb, panel)
}

// drawTextLine draws s with its top row at y0.
func drawTextLine(d framebuffer.Displayer, f tinyfont.Fonter, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, f, x, y0+font.GlyphHeight-1, r, fg)
		x += font.GlyphWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
