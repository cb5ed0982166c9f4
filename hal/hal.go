package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrLine is returned by a Panel for a line it cannot take.
	ErrLine = errors.New("hal: bad line")
)

// Panel is a line-addressed display.
//
// Line i is display column i. A line carries Height() pixels, top to
// bottom, as big-endian RGB565 (2*Height() bytes).
type Panel interface {
	Width() int
	Height() int
	WriteLine(line int, pixels []byte) error
}

// HAL provides the only contact point between the splash renderer and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Panel() Panel
}
