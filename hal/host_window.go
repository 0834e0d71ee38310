//go:build !tinygo && cgo

package hal

import (
	"image"

	"hemisphere/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	Host  HostConfig
}

// digitalKeys hold the trigger inputs high while pressed.
var digitalKeys = [hostChannels]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	h, err := newHostHAL(cfg.Host)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Hemisphere (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	for i, key := range digitalKeys {
		g.h.dig.drive(i, ebiten.IsKeyPressed(key))
	}
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	dst := g.img.Pix
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			j := (y*fb.width + x) * 4
			var v byte
			if MonoPixel(fb, x, y) {
				v = 0xFF
			}
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
