//go:build !tinygo && !cgo

package hal

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
	// No window keyboard without cgo; the terminal feeds events through send.
}
