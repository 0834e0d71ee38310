package applets

import (
	"testing"

	"hemisphere/applet"
)

func TestAttenuateOffsetPassesThrough(t *testing.T) {
	r := newRig()
	a := NewAttenuateOffset()
	r.bind(applet.Right, a)

	r.in[2] = 3000
	r.in[3] = -1200
	applet.Tick(a)
	if w, _ := r.out.last(2); w.value != 3000 {
		t.Fatalf("ch2: got %d want 3000", w.value)
	}
	if w, _ := r.out.last(3); w.value != -1200 {
		t.Fatalf("ch3: got %d want -1200", w.value)
	}
}

func TestAttenuateOffsetScalesAndClamps(t *testing.T) {
	r := newRig()
	a := NewAttenuateOffset()
	r.bind(applet.Left, a)

	a.OnEncoderMove(-50) // level 1 -> 50%
	a.OnButtonPress()
	a.OnEncoderMove(2) // offset 1 -> +256

	r.in[0] = 3900
	applet.Tick(a)
	if got := a.Output(0); got != 1950+256 {
		t.Fatalf("out0: got %d want %d", got, 1950+256)
	}

	a.OnEncoderMove(1000)
	r.in[0] = applet.MaxCV
	applet.Tick(a)
	if got := a.Output(0); got != applet.MaxCV {
		t.Fatalf("out0 clamp: got %d want %d", got, applet.MaxCV)
	}
}

func TestAttenuateOffsetForwarded(t *testing.T) {
	r := newRig()
	left := NewAttenuateOffset()
	right := NewAttenuateOffset()
	r.bind(applet.Left, left)
	r.bind(applet.Right, right)
	applet.SetForwarding(right, true)

	r.in[0] = 1000
	r.in[2] = 5000
	applet.Tick(left)
	applet.Tick(right)
	if got := right.Output(0); got != 1000 {
		t.Fatalf("forwarded: got %d want 1000", got)
	}
}
