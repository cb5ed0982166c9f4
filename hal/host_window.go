//go:build !tinygo && cgo

package hal

import (
	"image"

	"uf2splash/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the panel.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg.Width, cfg.Height, cfg.logOutput())
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Zoom, cfg.Height*cfg.Zoom)
	ebiten.SetTPS(cfg.Hz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil || g.img.Bounds().Dx() != p.width || g.img.Bounds().Dy() != p.height {
		g.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
		g.scratch = make([]byte, len(p.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(p.width, p.height)
	}

	p.snapshotRGB565(g.scratch)
	expandRGB565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.width, g.h.panel.height
}
