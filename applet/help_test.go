package applet

import "testing"

func TestRenderHelpReplacesView(t *testing.T) {
	r := newRig()
	a := r.bind(Left)

	ToggleHelp(a)
	if !a.HelpActive() {
		t.Fatal("expected help active")
	}
	for i := 0; i < 3; i++ {
		Render(a)
	}
	if a.views != 0 {
		t.Fatalf("view drawn %d times while help active", a.views)
	}
	for _, c := range []string{"print Test", "print Dig", "print CV", "print Out", "print Enc", "print Clock", "print Div", "invert 0 15 19 9", "invert 0 51 19 9"} {
		if !r.gfx.has(c) {
			t.Fatalf("help screen missing %q: %q", c, r.gfx.calls)
		}
	}

	ToggleHelp(a)
	r.gfx.reset()
	Render(a)
	if a.views != 1 {
		t.Fatalf("views = %d after toggling help off", a.views)
	}
	if r.gfx.has("print Dig") {
		t.Fatal("help drawn after toggling off")
	}
}

func TestRenderHelpOnRightIsOffset(t *testing.T) {
	r := newRig()
	a := r.bind(Right)
	ToggleHelp(a)
	Render(a)
	if !r.gfx.has("pos 65 16") || !r.gfx.has("pos 85 16") || !r.gfx.has("invert 65 15 19 9") {
		t.Fatalf("help rows not offset: %q", r.gfx.calls)
	}
}

func TestRenderForwardingNotification(t *testing.T) {
	r := newRig()
	a := r.bind(Right)
	Render(a)
	if r.gfx.has("print >") {
		t.Fatal("notification drawn with forwarding off")
	}

	SetForwarding(a, true)
	r.gfx.reset()
	Render(a)
	if !r.gfx.has("pos 61 2") || !r.gfx.has("pos 59 2") || !r.gfx.has("print >") {
		t.Fatalf("notification missing: %q", r.gfx.calls)
	}

	ToggleHelp(a)
	r.gfx.reset()
	Render(a)
	if r.gfx.has("pos 61 2") {
		t.Fatal("notification drawn over help screen")
	}
}
