package applets

import (
	"testing"

	"hemisphere/applet"
)

func TestClockDividerDivides(t *testing.T) {
	r := newRig()
	a := NewClockDivider()
	r.bind(applet.Left, a)

	r.dig.clocked[0] = true
	for i := 0; i < 8; i++ {
		applet.Tick(a)
	}
	if got := r.out.pulses(0); got != 4 {
		t.Fatalf("ch0 pulses: got %d want 4", got)
	}
	if got := r.out.pulses(1); got != 2 {
		t.Fatalf("ch1 pulses: got %d want 2", got)
	}
}

func TestClockDividerRightUsesOwnLines(t *testing.T) {
	r := newRig()
	a := NewClockDivider()
	r.bind(applet.Right, a)

	r.dig.clocked[0] = true
	for i := 0; i < 4; i++ {
		applet.Tick(a)
	}
	if len(r.out.writes) != 0 {
		t.Fatalf("Right reacted to Left clock: %v", r.out.writes)
	}
	r.dig.clocked[0] = false
	r.dig.clocked[2] = true
	for i := 0; i < 4; i++ {
		applet.Tick(a)
	}
	if got := r.out.pulses(2); got != 2 {
		t.Fatalf("physical ch2 pulses: got %d want 2", got)
	}
}

func TestClockDividerReset(t *testing.T) {
	r := newRig()
	a := NewClockDivider()
	r.bind(applet.Left, a)

	r.dig.clocked[0] = true
	applet.Tick(a)
	r.dig.clocked[1] = true
	applet.Tick(a) // reset then count 1
	if got := r.out.pulses(0); got != 0 {
		t.Fatalf("pulses after reset: got %d want 0", got)
	}
	r.dig.clocked[1] = false
	applet.Tick(a)
	if got := r.out.pulses(0); got != 1 {
		t.Fatalf("pulses: got %d want 1", got)
	}
}

func TestClockDividerCVAndEncoder(t *testing.T) {
	r := newRig()
	a := NewClockDivider()
	r.bind(applet.Left, a)

	r.in[0] = applet.MaxCV
	applet.Tick(a)
	if got := a.division(0); got != 10 {
		t.Fatalf("division with full CV: got %d want 10", got)
	}

	a.OnEncoderMove(-5)
	if a.div[0] != 1 {
		t.Fatalf("div clamps at 1: got %d", a.div[0])
	}
	a.OnButtonPress()
	a.OnEncoderMove(100)
	if a.div[1] != maxDivision {
		t.Fatalf("div clamps at %d: got %d", maxDivision, a.div[1])
	}
}

func TestClockDividerView(t *testing.T) {
	r := newRig()
	a := NewClockDivider()
	r.bind(applet.Right, a)
	applet.Render(a)

	if got := r.gfx.printed(); got != "Clock Div|Ch1 /|2|Ch2 /|4|" {
		t.Fatalf("printed: %q", got)
	}
	if r.gfx.calls[0] != "pos 66 2" {
		t.Fatalf("header not offset: %q", r.gfx.calls[0])
	}
}
