// Package icon implements the monochrome icon asset format.
//
// An icon is a 3-byte header [width, height, encodedLength] followed by
// encodedLength control bytes. Pixels are produced column by column, top
// to bottom, from a bit-run encoding:
//
//   - a byte with bit 7 set is a run marker: bit 6 is the pixel value and
//     bits 0..5 the run length;
//   - any other byte is a literal whose bits 0..6 are the next seven pixels,
//     least significant bit first.
//
// Decoder state carries across columns.
package icon

import (
	"errors"
	"fmt"
)

const (
	// HeaderLen is the size of the icon header.
	HeaderLen = 3
	// MaxSide is the largest width or height the header can express.
	MaxSide = 255
	// MaxEncoded is the largest encoded payload the header can express.
	MaxEncoded = 255
	// MaxRun is the longest run a single marker can carry.
	MaxRun = 0x3f

	literalBits = 7
	runFlag     = 0x80
	runBit      = 0x40
)

var (
	// ErrTruncated reports a stream that ran out of control bytes before
	// every pixel was produced.
	ErrTruncated = errors.New("icon: truncated stream")
	// ErrMalformed reports a header that does not match the data.
	ErrMalformed = errors.New("icon: malformed header")
	// ErrTooLarge reports a bitmap the format cannot hold.
	ErrTooLarge = errors.New("icon: too large")
)

// DecodeError carries the byte offset at which decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("icon: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Bitmap is a decoded icon. Bits are stored one per byte, column-major.
type Bitmap struct {
	Width  int
	Height int
	bits   []byte
}

// NewBitmap returns a clear w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{Width: w, Height: h, bits: make([]byte, w*h)}
}

// At reports whether the pixel at (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.bits[x*b.Height+y] != 0
}

// Set sets or clears the pixel at (x, y). Out of range coordinates are
// ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	var v byte
	if on {
		v = 1
	}
	b.bits[x*b.Height+y] = v
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		n += int(v)
	}
	return n
}

// Size returns the width and height stored in an icon header.
func Size(data []byte) (w, h int, err error) {
	if len(data) < HeaderLen {
		return 0, 0, &DecodeError{Offset: len(data), Err: ErrMalformed}
	}
	return int(data[0]), int(data[1]), nil
}

// Decode expands an encoded icon.
func Decode(data []byte) (*Bitmap, error) {
	w, h, err := Size(data)
	if err != nil {
		return nil, err
	}
	budget := int(data[2])
	if len(data)-HeaderLen < budget {
		return nil, &DecodeError{Offset: 2, Err: ErrMalformed}
	}

	b := NewBitmap(w, h)
	var (
		pos    = HeaderLen
		mask   = byte(runFlag)
		last   byte
		runLen int
		runOn  bool
	)
	for i := 0; i < len(b.bits); {
		var on bool
		switch {
		case mask != runFlag:
			on = last&mask != 0
			mask <<= 1
		case runLen > 0:
			on = runOn
			runLen--
		default:
			if budget == 0 {
				return nil, &DecodeError{Offset: pos, Err: ErrTruncated}
			}
			budget--
			last = data[pos]
			pos++
			if last&runFlag != 0 {
				runLen = int(last & MaxRun)
				runOn = last&runBit != 0
			} else {
				mask = 1
			}
			// A control byte produces no pixel by itself.
			continue
		}
		if on {
			b.bits[i] = 1
		}
		i++
	}
	return b, nil
}

// Encode produces an icon stream that Decode turns back into b. Runs of
// eight or more equal pixels become run markers; everything else is packed
// into literals.
func Encode(b *Bitmap) ([]byte, error) {
	if b.Width > MaxSide || b.Height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Width, b.Height)
	}
	bits := b.bits
	out := make([]byte, HeaderLen, HeaderLen+len(bits)/literalBits+1)
	out[0], out[1] = byte(b.Width), byte(b.Height)

	for p := 0; p < len(bits); {
		v := bits[p]
		r := 1
		for p+r < len(bits) && bits[p+r] == v && r < MaxRun {
			r++
		}
		if r > literalBits {
			c := byte(runFlag | r)
			if v != 0 {
				c |= runBit
			}
			out = append(out, c)
			p += r
			continue
		}
		var lit byte
		for k := 0; k < literalBits && p+k < len(bits); k++ {
			if bits[p+k] != 0 {
				lit |= 1 << k
			}
		}
		out = append(out, lit)
		p += literalBits
	}

	n := len(out) - HeaderLen
	if n > MaxEncoded {
		return nil, fmt.Errorf("%w: %d encoded bytes", ErrTooLarge, n)
	}
	out[2] = byte(n)
	return out, nil
}
