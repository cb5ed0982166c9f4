// Package display streams a framebuffer to a panel one column at a time.
//
// Each column is expanded through the palette to big-endian RGB565 (high
// byte first) and handed to a LineWriter.
package display

import (
	"errors"
	"fmt"

	"uf2splash/framebuffer"
	"uf2splash/palette"
)

// LineWriter accepts one display line. pixels holds 2*height bytes of
// big-endian RGB565 and is only valid for the duration of the call.
type LineWriter interface {
	WriteLine(line int, pixels []byte) error
}

// Sizer is implemented by sinks with a fixed geometry. Flush refuses to
// stream a framebuffer of a different size into one.
type Sizer interface {
	Width() int
	Height() int
}

// ErrSize reports a framebuffer that does not match the sink.
var ErrSize = errors.New("display: size mismatch")

// EncodeLine expands col into dst as big-endian RGB565. dst must hold
// 2*len(col) bytes.
func EncodeLine(dst, col []byte) {
	for i, idx := range col {
		c := palette.ColorOf(idx)
		dst[2*i] = byte(c >> 8)
		dst[2*i+1] = byte(c)
	}
}

// Flush sends every column of fb to w in increasing order, reusing one
// scratch line. The first sink error stops the transfer.
func Flush(fb *framebuffer.Framebuffer, w LineWriter) error {
	if s, ok := w.(Sizer); ok {
		if s.Width() != fb.Width() || s.Height() != fb.Height() {
			return fmt.Errorf("%w: framebuffer %dx%d, panel %dx%d",
				ErrSize, fb.Width(), fb.Height(), s.Width(), s.Height())
		}
	}
	line := make([]byte, 2*fb.Height())
	for x := 0; x < fb.Width(); x++ {
		EncodeLine(line, fb.Column(x))
		if err := w.WriteLine(x, line); err != nil {
			return fmt.Errorf("display: line %d: %w", x, err)
		}
	}
	return nil
}

// Recorder is a LineWriter that keeps a copy of every line it receives.
type Recorder struct {
	Lines [][]byte
	Index []int
}

func (r *Recorder) WriteLine(line int, pixels []byte) error {
	r.Index = append(r.Index, line)
	r.Lines = append(r.Lines, append([]byte(nil), pixels...))
	return nil
}

// Pixel returns the RGB565 value recorded for (x, y) of the x-th received
// line.
func (r *Recorder) Pixel(x, y int) (uint16, bool) {
	if x < 0 || x >= len(r.Lines) || y < 0 || 2*y+1 >= len(r.Lines[x]) {
		return 0, false
	}
	l := r.Lines[x]
	return uint16(l[2*y])<<8 | uint16(l[2*y+1]), true
}

// Reset drops all recorded lines.
func (r *Recorder) Reset() {
	r.Lines = r.Lines[:0]
	r.Index = r.Index[:0]
}
