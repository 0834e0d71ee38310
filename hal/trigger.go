package hal

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Pull selects the pull resistor of a trigger input.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
)

// TriggerPin is one digital input jack. Read reports the logical level: true while a
// trigger or gate is present, whatever the electrical polarity.
type TriggerPin interface {
	Name() string
	Configure(pull Pull) error
	Read() (high bool, err error)
}

// triggers turns trigger pins into clock/gate lines with rising-edge detection.
type triggers struct {
	pins []TriggerPin
	prev []bool
}

func newTriggers(pins []TriggerPin, pull Pull) (*triggers, error) {
	for _, p := range pins {
		if err := p.Configure(pull); err != nil {
			return nil, fmt.Errorf("trigger %s: %w", p.Name(), err)
		}
	}
	return &triggers{pins: pins, prev: make([]bool, len(pins))}, nil
}

func (t *triggers) Lines() int { return len(t.pins) }

func (t *triggers) Gated(line int) bool {
	if line < 0 || line >= len(t.pins) {
		return false
	}
	high, err := t.pins[line].Read()
	return err == nil && high
}

// Clocked consumes the edge: a line held high reports true once.
func (t *triggers) Clocked(line int) bool {
	if line < 0 || line >= len(t.pins) {
		return false
	}
	high := t.Gated(line)
	rising := high && !t.prev[line]
	t.prev[line] = high
	return rising
}

// drive sets a patched line from an external stimulus (keyboard, terminal, test).
func (t *triggers) drive(line int, high bool) {
	if line < 0 || line >= len(t.pins) {
		return
	}
	if p, ok := t.pins[line].(*patchPin); ok {
		p.level.Store(high)
	}
}

// patchPin is a host input whose level is set by hand.
type patchPin struct {
	name  string
	level atomic.Bool
}

func newPatchPin(name string) *patchPin { return &patchPin{name: name} }

func (p *patchPin) Name() string { return p.name }

func (p *patchPin) Configure(pull Pull) error {
	if pull != PullNone {
		return ErrNotImplemented
	}
	return nil
}

func (p *patchPin) Read() (bool, error) { return p.level.Load(), nil }

// clockPin is a free-running square wave, high for the first part of each period.
type clockPin struct {
	name   string
	now    func() time.Time
	t0     time.Time
	period time.Duration
	high   time.Duration
}

func newClockPin(name string, period time.Duration, now func() time.Time) *clockPin {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = time.Second
	}
	return &clockPin{name: name, now: now, t0: now(), period: period, high: period / 2}
}

func (p *clockPin) Name() string { return p.name }

func (p *clockPin) Configure(pull Pull) error {
	if pull != PullNone {
		return ErrNotImplemented
	}
	return nil
}

func (p *clockPin) Read() (bool, error) {
	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		return false, nil
	}
	return elapsed%p.period < p.high, nil
}
