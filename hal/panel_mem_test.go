package hal

import (
	"errors"
	"image/color"
	"testing"
)

func TestMemPanelWriteLine(t *testing.T) {
	p := newMemPanel(3, 2)
	// Column 1: white on top, pure red below.
	if err := p.WriteLine(1, []byte{0xff, 0xff, 0xf8, 0x00}); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if got := p.RGB565(1, 0); got != 0xffff {
		t.Fatalf("(1,0) = %#04x", got)
	}
	if got := p.RGB565(1, 1); got != 0xf800 {
		t.Fatalf("(1,1) = %#04x", got)
	}
	if got := p.RGB565(0, 0); got != 0 {
		t.Fatalf("(0,0) = %#04x", got)
	}
	// Row-major little-endian store.
	if p.buf[1*p.stride+2] != 0x00 || p.buf[1*p.stride+3] != 0xf8 {
		t.Fatalf("store layout = % x", p.buf)
	}
	if p.Lines() != 1 {
		t.Fatalf("Lines = %d", p.Lines())
	}
}

func TestMemPanelRejectsBadLines(t *testing.T) {
	p := newMemPanel(2, 2)
	if err := p.WriteLine(2, make([]byte, 4)); !errors.Is(err, ErrLine) {
		t.Fatalf("line out of range err = %v", err)
	}
	if err := p.WriteLine(-1, make([]byte, 4)); !errors.Is(err, ErrLine) {
		t.Fatalf("negative line err = %v", err)
	}
	if err := p.WriteLine(0, make([]byte, 3)); !errors.Is(err, ErrLine) {
		t.Fatalf("short line err = %v", err)
	}
	if p.Lines() != 0 {
		t.Fatalf("rejected lines counted")
	}
}

func TestMemPanelImage(t *testing.T) {
	p := newMemPanel(2, 1)
	_ = p.WriteLine(0, []byte{0xf8, 0x00})
	_ = p.WriteLine(1, []byte{0x00, 0x1f})
	img := p.Image()
	if got := img.At(0, 0); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("(0,0) = %v", got)
	}
	if got := img.At(1, 0); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Fatalf("(1,0) = %v", got)
	}
}
