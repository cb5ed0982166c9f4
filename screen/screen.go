// Package screen composes the "drag firmware here" splash screen.
package screen

import (
	"fmt"

	"uf2splash/board"
	"uf2splash/display"
	"uf2splash/font"
	"uf2splash/framebuffer"
	"uf2splash/icon"
	"uf2splash/palette"
	"uf2splash/raster"

	"tinygo.org/x/tinyfont"
)

// Layout constants, in pixels at scale 1.
const (
	headerHeight = 52
	footerHeight = 14
	titleScale   = 4
	titleY       = 5
	versionY     = 40
	dragY        = 70
	dragDelta    = 12
	labelGap     = 12
)

// Icons holds the encoded icon assets drawn on the screen.
type Icons struct {
	File  []byte
	Arrow []byte
	Drive []byte
}

// DefaultIcons are the built-in assets.
var DefaultIcons = Icons{File: icon.File, Arrow: icon.Arrow, Drive: icon.Drive}

// Result describes a finished render.
type Result struct {
	Width   int
	Height  int
	Clipped int
}

// Composer draws the splash screen for one board.
type Composer struct {
	Board board.Config
	Font  *font.Font
	Icons Icons

	// Alloc creates the framebuffer. Nil means framebuffer.New.
	Alloc func(w, h int) (*framebuffer.Framebuffer, error)
}

// New returns a Composer for b with the built-in font and icons.
func New(b board.Config) *Composer {
	return &Composer{Board: b, Font: font.Default, Icons: DefaultIcons}
}

type decodedIcons struct {
	file, arrow, drive *icon.Bitmap
}

func (c *Composer) decodeIcons() (decodedIcons, error) {
	var d decodedIcons
	var err error
	if d.file, err = icon.Decode(c.Icons.File); err != nil {
		return d, fmt.Errorf("screen: file icon: %w", err)
	}
	if d.arrow, err = icon.Decode(c.Icons.Arrow); err != nil {
		return d, fmt.Errorf("screen: arrow icon: %w", err)
	}
	if d.drive, err = icon.Decode(c.Icons.Drive); err != nil {
		return d, fmt.Errorf("screen: drive icon: %w", err)
	}
	return d, nil
}

// Compose draws the screen into a new framebuffer. Asset and allocation
// errors are reported before anything is drawn.
func (c *Composer) Compose() (*framebuffer.Framebuffer, error) {
	icons, err := c.decodeIcons()
	if err != nil {
		return nil, err
	}
	alloc := c.Alloc
	if alloc == nil {
		alloc = framebuffer.New
	}
	fb, err := alloc(c.Board.Width, c.Board.Height)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if fb == nil {
		return nil, fmt.Errorf("screen: %w: no framebuffer", framebuffer.ErrAlloc)
	}
	f := c.Font
	if f == nil {
		f = font.Default
	}
	c.draw(fb, f, icons)
	return fb, nil
}

// Render composes the screen and streams it to w.
func (c *Composer) Render(w display.LineWriter) (Result, error) {
	fb, err := c.Compose()
	if err != nil {
		return Result{}, err
	}
	res := Result{Width: fb.Width(), Height: fb.Height(), Clipped: fb.Clipped()}
	if err := display.Flush(fb, w); err != nil {
		return res, fmt.Errorf("screen: %w", err)
	}
	return res, nil
}

func (c *Composer) draw(fb *framebuffer.Framebuffer, f *font.Font, icons decodedIcons) {
	b := c.Board
	W, H := fb.Width(), fb.Height()
	S := b.Scale()

	fb.FillBar(0, headerHeight, palette.Green)
	fb.FillBar(headerHeight, H-headerHeight-footerHeight*S, palette.Blue)
	fb.FillBar(H-footerHeight*S, footerHeight*S, palette.Orange)

	titleX := (W - raster.TextWidth(titleScale, b.Title)) / 2
	raster.DrawText(fb, f, max(titleX, 0), titleY, palette.White, titleScale, b.Title)

	_, versionW := tinyfont.LineWidth(f.Fonter(raster.LineHeight), b.Version)
	versionX := (W - int(versionW)) / 2
	raster.DrawText(fb, f, max(versionX, 0), versionY, palette.Purple, 1, b.Version)

	hintX := (W - font.GlyphWidth*S*runeCount(b.Hint)) / 2
	raster.DrawText(fb, f, hintX, H-footerHeight*S+2, palette.White, S, b.Hint)

	firmwareX := W/2 - font.GlyphWidth*S*runeCount(b.Firmware) - labelGap
	raster.DrawText(fb, f, firmwareX, dragY-labelGap, palette.White, S, b.Firmware)
	raster.DrawText(fb, f, W/2+labelGap, dragY-labelGap, palette.White, S, b.Volume)

	iconY := dragY + dragDelta*S
	raster.DrawIcon(fb, W/2-44*S, iconY+5, palette.White, S, icons.file)
	raster.DrawIcon(fb, W/2-12*S, iconY, palette.White, S, icons.arrow)
	raster.DrawIcon(fb, W/2+20*S, iconY, palette.White, S, icons.drive)
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
