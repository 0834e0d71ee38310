// Package manager hosts one applet on each hemisphere of the module.
package manager

import (
	"fmt"
	"io"

	"hemisphere/applet"
	"hemisphere/hal"
)

// Screen is the display the manager renders both hemispheres onto.
type Screen interface {
	applet.Graphics
	Clear()
	Display() error
}

// Manager owns the shared I/O bus and screen and drives the two hemispheres.
type Manager struct {
	log    hal.Logger
	bus    *applet.Bus
	screen Screen

	applets    [2]applet.Applet
	forwarding bool
	ticks      uint64
}

// New returns a manager with no applets loaded.
func New(log hal.Logger, bus *applet.Bus, screen Screen) *Manager {
	return &Manager{log: log, bus: bus, screen: screen}
}

func (m *Manager) logf(format string, args ...any) {
	if m.log == nil {
		return
	}
	m.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Load binds a fresh applet to h, discarding whatever was there.
func (m *Manager) Load(h applet.Hemisphere, a applet.Applet) error {
	if err := applet.Bind(a, h, m.bus, m.screen); err != nil {
		return fmt.Errorf("manager: load %s on %s: %w", a.Name(), h, err)
	}
	applet.SetForwarding(a, m.forwarding)
	if old, ok := m.applets[h].(io.Closer); ok {
		if err := old.Close(); err != nil {
			m.logf("hemisphere: %s close %s: %v", h, old.(applet.Applet).Name(), err)
		}
	}
	m.applets[h] = a
	m.logf("hemisphere: %s loaded %s", h, a.Name())
	return nil
}

// Applet returns the applet on h, or nil.
func (m *Manager) Applet(h applet.Hemisphere) applet.Applet {
	if !h.Valid() {
		return nil
	}
	return m.applets[h]
}

// Ticks returns the number of ticks run so far.
func (m *Manager) Ticks() uint64 { return m.ticks }

// Tick runs one control cycle. Left runs first so that a forwarding Right hemisphere reads
// outputs written during this cycle.
func (m *Manager) Tick() {
	for _, a := range m.applets {
		if a != nil {
			applet.Tick(a)
		}
	}
	m.ticks++
}

// Render draws both hemispheres and presents the frame.
func (m *Manager) Render() error {
	m.screen.Clear()
	for _, a := range m.applets {
		if a != nil {
			applet.Render(a)
		}
	}
	return m.screen.Display()
}

// SetForwarding routes the Right hemisphere's inputs from the Left hemisphere's outputs.
func (m *Manager) SetForwarding(on bool) {
	if m.forwarding == on {
		return
	}
	m.forwarding = on
	for _, a := range m.applets {
		if a != nil {
			applet.SetForwarding(a, on)
		}
	}
	m.logf("hemisphere: forwarding %v", on)
}

// Forwarding reports whether forwarding is on.
func (m *Manager) Forwarding() bool { return m.forwarding }

// ToggleHelp flips the help screen of the applet on h.
func (m *Manager) ToggleHelp(h applet.Hemisphere) {
	if a := m.Applet(h); a != nil {
		applet.ToggleHelp(a)
	}
}

// Encoder turns h's encoder by direction detents.
func (m *Manager) Encoder(h applet.Hemisphere, direction int) {
	if e, ok := m.Applet(h).(applet.EncoderHandler); ok {
		e.OnEncoderMove(direction)
	}
}

// Button presses h's encoder button.
func (m *Manager) Button(h applet.Hemisphere) {
	if e, ok := m.Applet(h).(applet.EncoderHandler); ok {
		e.OnButtonPress()
	}
}
