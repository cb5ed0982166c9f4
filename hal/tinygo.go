//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	panel  Panel
}

// New returns a Pico 2 (RP2350) HAL implementation. The bare board has no
// display; lines written to its panel are refused.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New(width, height int) HAL {
	return &tinyGoHAL{
		logger: &uartLogger{uart: configureUART0()},
		led:    configureLED(),
		panel:  &stubPanel{w: width, h: height},
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) LED() LED       { return h.led }
func (h *tinyGoHAL) Panel() Panel   { return h.panel }
