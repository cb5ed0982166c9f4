//go:build tinygo && baremetal

package hal

// stubPanel accepts nothing. It stands in for boards without a supported
// display controller.
type stubPanel struct {
	w int
	h int
}

func (p *stubPanel) Width() int  { return p.w }
func (p *stubPanel) Height() int { return p.h }

func (p *stubPanel) WriteLine(line int, pixels []byte) error {
	_ = line
	_ = pixels
	return ErrNotImplemented
}
