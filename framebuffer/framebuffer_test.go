package framebuffer

import (
	"errors"
	"image/color"
	"testing"

	"uf2splash/palette"

	"github.com/google/go-cmp/cmp"
)

func TestNewRejectsBadSizes(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {MaxPixels, 2}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrAlloc) {
			t.Errorf("New(%d, %d) err = %v, want ErrAlloc", sz[0], sz[1], err)
		}
	}
}

func TestNewIsBlack(t *testing.T) {
	fb, err := New(4, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if c := fb.Index(x, y); c != palette.Black {
				t.Fatalf("(%d,%d) = %d", x, y, c)
			}
		}
	}
}

func TestColumnMajorLayout(t *testing.T) {
	fb, _ := New(3, 4)
	fb.Set(1, 2, palette.Red)
	want := []byte{0, 0, palette.Red, 0}
	if diff := cmp.Diff(want, fb.Column(1)); diff != "" {
		t.Fatalf("column 1 (-want +got):\n%s", diff)
	}
	if fb.pix[1*4+2] != palette.Red {
		t.Fatalf("pixel not at x*height+y")
	}
}

func TestSetClipsAndCounts(t *testing.T) {
	fb, _ := New(2, 2)
	if fb.Set(2, 0, palette.White) {
		t.Fatalf("Set outside reported success")
	}
	if fb.Set(0, -1, palette.White) {
		t.Fatalf("Set outside reported success")
	}
	if got := fb.Clipped(); got != 2 {
		t.Fatalf("Clipped = %d, want 2", got)
	}
	for _, b := range fb.pix {
		if b != 0 {
			t.Fatalf("clipped write touched the buffer: %v", fb.pix)
		}
	}
}

func TestFillBlockPartiallyOutside(t *testing.T) {
	fb, _ := New(3, 3)
	fb.FillBlock(2, 2, 2, palette.Pink)
	if fb.Index(2, 2) != palette.Pink {
		t.Fatalf("inside pixel not painted")
	}
	if got := fb.Clipped(); got != 3 {
		t.Fatalf("Clipped = %d, want 3", got)
	}
}

func TestFillBar(t *testing.T) {
	fb, _ := New(3, 5)
	fb.FillBar(1, 2, palette.Blue)
	for x := 0; x < 3; x++ {
		want := []byte{0, palette.Blue, palette.Blue, 0, 0}
		if diff := cmp.Diff(want, fb.Column(x)); diff != "" {
			t.Fatalf("column %d (-want +got):\n%s", x, diff)
		}
	}
}

func TestFillBarClamps(t *testing.T) {
	fb, _ := New(2, 4)
	fb.FillBar(-2, 3, palette.Green)
	fb.FillBar(3, 10, palette.Orange)
	fb.FillBar(5, 1, palette.Red)
	fb.FillBar(1, 0, palette.Red)
	want := []byte{palette.Green, 0, 0, palette.Orange}
	for x := 0; x < 2; x++ {
		if diff := cmp.Diff(want, fb.Column(x)); diff != "" {
			t.Fatalf("column %d (-want +got):\n%s", x, diff)
		}
	}
	if fb.Clipped() != 0 {
		t.Fatalf("bar fill counted clipping")
	}
}

func TestColumnOutOfRange(t *testing.T) {
	fb, _ := New(2, 2)
	if fb.Column(-1) != nil || fb.Column(2) != nil {
		t.Fatalf("Column out of range returned data")
	}
}

func TestImageInterface(t *testing.T) {
	fb, _ := New(2, 2)
	fb.Set(1, 0, palette.Yellow)
	if got := fb.Bounds().Dx(); got != 2 {
		t.Fatalf("Bounds().Dx() = %d", got)
	}
	if got := fb.At(1, 0); got != palette.RGBA(palette.Yellow) {
		t.Fatalf("At(1,0) = %v", got)
	}
	if got := fb.ColorModel().Convert(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); got != palette.RGBA(palette.White) {
		t.Fatalf("ColorModel white = %v", got)
	}
}

func TestDisplayer(t *testing.T) {
	fb, _ := New(4, 2)
	d := AsDisplayer(fb)
	w, h := d.Size()
	if w != 4 || h != 2 {
		t.Fatalf("Size = %d,%d", w, h)
	}
	d.SetPixel(3, 1, palette.RGBA(palette.Cyan))
	d.SetPixel(9, 9, palette.RGBA(palette.Cyan))
	if fb.Index(3, 1) != palette.Cyan {
		t.Fatalf("SetPixel did not map to cyan, got %d", fb.Index(3, 1))
	}
	if fb.Clipped() != 1 {
		t.Fatalf("Clipped = %d", fb.Clipped())
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}
