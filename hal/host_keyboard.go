//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeys maps the keys that turn encoders and press buttons.
var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyF1, KeyF1},
	{ebiten.KeyF2, KeyF2},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) send(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.send(KeyEvent{Press: true, Rune: r})
	}
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.send(KeyEvent{Code: hk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.send(KeyEvent{Code: hk.code, Press: false})
		}
	}
}
