//go:build tinygo && baremetal && picocalc

package hal

import "fmt"

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcHAL struct {
	logger *uartLogger
	led    *pinLED
	panel  Panel
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// The ILI9488 is fixed at 320x320; other sizes fall back to a stub panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New(width, height int) HAL {
	logger := &uartLogger{uart: configureUART0()}

	var panel Panel = &stubPanel{w: width, h: height}
	if width == picoCalcWidth && height == picoCalcHeight {
		if p, err := newPicoCalcPanel(); err == nil {
			panel = p
		} else {
			logger.WriteLineString("hal: display: " + err.Error())
		}
	} else {
		logger.WriteLineString(fmt.Sprintf("hal: display: %dx%d unsupported", width, height))
	}

	return &picoCalcHAL{
		logger: logger,
		led:    configureLED(),
		panel:  panel,
	}
}

func (h *picoCalcHAL) Logger() Logger { return h.logger }
func (h *picoCalcHAL) LED() LED       { return h.led }
func (h *picoCalcHAL) Panel() Panel   { return h.panel }

type picoCalcPanel struct {
	w   int
	h   int
	lcd *ili9488
}

func newPicoCalcPanel() (*picoCalcPanel, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	return &picoCalcPanel{w: picoCalcWidth, h: picoCalcHeight, lcd: lcd}, nil
}

func (p *picoCalcPanel) Width() int  { return p.w }
func (p *picoCalcPanel) Height() int { return p.h }

func (p *picoCalcPanel) WriteLine(line int, pixels []byte) error {
	if line < 0 || line >= p.w || len(pixels) != 2*p.h {
		return ErrLine
	}
	return p.lcd.writeColumn(uint16(line), pixels)
}
