//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// tinyGoInput has no keyboard; encoders are not wired through the HAL yet.
type tinyGoInput struct{}

func (in tinyGoInput) Keyboard() Keyboard { return nil }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime(period time.Duration) *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type serialLogger struct{}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

// machinePin is a trigger input jack. The jacks are inverting.
type machinePin struct {
	name string
	pin  machine.Pin
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Configure(pull Pull) error {
	mode := machine.PinInput
	if pull == PullUp {
		mode = machine.PinInputPullup
	}
	p.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (p *machinePin) Read() (bool, error) { return !p.pin.Get(), nil }
