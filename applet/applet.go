// Package applet is the runtime base shared by every hemisphere applet.
//
// An applet is bound to one hemisphere of the module. The binding decides which two of the
// four physical inputs, outputs and digital lines it sees as its channels 0 and 1, and which
// half of the display it draws on. Concrete applets embed Base and implement Applet; the
// host drives them through Bind, Tick and Render.
package applet

import (
	"errors"
	"fmt"
)

// MaxNameLen is the longest applet name that fits in the header.
const MaxNameLen = 10

var (
	ErrAlreadyBound      = errors.New("applet: already bound")
	ErrInvalidHemisphere = errors.New("applet: invalid hemisphere")
	ErrNameTooLong       = errors.New("applet: name too long")
)

// Applet is implemented by concrete applets embedding Base.
type Applet interface {
	// Name is shown in the header and help screen.
	Name() string
	// Start runs once after the applet is bound.
	Start()
	// Controller runs once per tick after inputs are refreshed.
	Controller()
	// View draws the applet's own screen.
	View()
	// Help describes the applet's use of each input category.
	Help() Help

	hemisphereBase() *Base
}

// EncoderHandler is implemented by applets that react to their hemisphere's encoder.
type EncoderHandler interface {
	OnButtonPress()
	OnEncoderMove(direction int)
}

// Base holds the per-hemisphere state of an applet. The zero value is unbound.
type Base struct {
	binding Binding
	bus     *Bus
	gfx     Graphics

	inputs  [Channels]int
	outputs [Channels]int
	clock   [Channels]int
	cursor  Cursor

	forwarding bool
	help       bool
	bound      bool
}

func (b *Base) hemisphereBase() *Base { return b }

// Hemisphere returns the hemisphere the applet is bound to.
func (b *Base) Hemisphere() Hemisphere { return b.binding.hemisphere }

// Binding returns the applet's binding.
func (b *Base) Binding() Binding { return b.binding }

// Bound reports whether the applet has been bound.
func (b *Base) Bound() bool { return b.bound }

// CursorBlink reports whether an edit cursor should be drawn this frame.
func (b *Base) CursorBlink() bool { return b.cursor.Visible() }

// ResetCursor makes the cursor visible now and restarts its blink cycle.
func (b *Base) ResetCursor() { b.cursor.Reset() }

// Bind assigns a to hemisphere h, drawing on gfx and doing I/O through bus, then starts it.
//
// An applet can be bound once; a new binding needs a new instance.
func Bind(a Applet, h Hemisphere, bus *Bus, gfx Graphics) error {
	if !h.Valid() {
		return ErrInvalidHemisphere
	}
	if n := a.Name(); len(n) > MaxNameLen {
		return fmt.Errorf("%w: %q", ErrNameTooLong, n)
	}
	b := a.hemisphereBase()
	if b.bound {
		return ErrAlreadyBound
	}
	*b = Base{
		binding: NewBinding(h),
		bus:     bus,
		gfx:     gfx,
		bound:   true,
	}
	b.cursor.Reset()
	a.Start()
	return nil
}

// Tick refreshes inputs, advances the clock and cursor timers, then runs the controller.
func Tick(a Applet) {
	a.hemisphereBase().io()
	a.Controller()
}

// Render draws one frame: the help screen if active, otherwise the view plus notifications.
func Render(a Applet) {
	b := a.hemisphereBase()
	if b.help {
		b.drawHelp(a.Name(), a.Help())
		return
	}
	a.View()
	b.drawNotifications()
}

// ToggleHelp switches between the help screen and the applet view.
func ToggleHelp(a Applet) {
	a.hemisphereBase().toggleHelp()
}

// SetForwarding routes a Right hemisphere applet's inputs from the Left outputs.
// It has no effect on a Left hemisphere applet.
func SetForwarding(a Applet, on bool) {
	a.hemisphereBase().setForwarding(on)
}

// BaseOf returns the Base embedded in a.
func BaseOf(a Applet) *Base { return a.hemisphereBase() }

func (b *Base) drawNotifications() {
	if b.forwarding {
		b.gfx.SetPrintPos(61, 2)
		b.gfx.Print(">")
		b.gfx.SetPrintPos(59, 2)
		b.gfx.Print(">")
	}
}
