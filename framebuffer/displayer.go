package framebuffer

import (
	"image/color"

	"uf2splash/palette"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Framebuffer to drivers.Displayer so tinyfont and other
// TinyGo drawing code can render into it. Colours are mapped to the
// nearest palette entry.
type Displayer struct {
	fb *Framebuffer
}

var _ drivers.Displayer = Displayer{}

// AsDisplayer returns a drivers.Displayer view of f.
func AsDisplayer(f *Framebuffer) Displayer {
	return Displayer{fb: f}
}

func (d Displayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.w), int16(d.fb.h)
}

func (d Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.Set(int(x), int(y), palette.Index(c))
}

// Display is a no-op; lines are pushed by the display transport.
func (d Displayer) Display() error { return nil }
