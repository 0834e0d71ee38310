//go:build !tinygo

package applets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hemisphere/applet"
)

const echoScript = `
name = "Echo"
help = {"Clock", "In 1,2", "Copy", ""}
clocks = 0

function controller()
  Out(0, In(1))
  if Clock(0) then
    clocks = clocks + 1
    ClockOut(1, 10)
  end
end

function view()
  gfxHeader()
  gfxPrint(1, 15, clocks)
end

function encoder(dir)
  clocks = clocks + dir
end
`

func TestLuaApplet(t *testing.T) {
	a, err := NewLua(echoScript)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer a.Close()

	if a.Name() != "Echo" {
		t.Fatalf("Name: %q", a.Name())
	}
	if h := a.Help(); h[applet.HelpCVs] != "In 1,2" || h[applet.HelpEncoder] != "" {
		t.Fatalf("Help: %q", h)
	}

	r := newRig()
	r.bind(applet.Right, a)
	r.in[3] = 1234
	r.dig.clocked[2] = true
	applet.Tick(a)

	if w, _ := r.out.last(2); w.value != 1234 {
		t.Fatalf("Out: got %+v", w)
	}
	if got := r.out.pulses(3); got != 1 {
		t.Fatalf("ClockOut pulses: got %d want 1", got)
	}

	a.OnEncoderMove(2)
	applet.Render(a)
	if got := r.gfx.printed(); got != "Echo|3|" {
		t.Fatalf("printed: %q", got)
	}
	if a.Err() != nil {
		t.Fatalf("Err: %v", a.Err())
	}
}

func TestLuaRuntimeErrorStopsScript(t *testing.T) {
	a, err := NewLua(`
name = "Bad"
calls = 0
function controller()
  calls = calls + 1
  Out(7, 0)
end
`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer a.Close()

	r := newRig()
	r.bind(applet.Left, a)
	applet.Tick(a)
	applet.Tick(a)
	if a.Err() == nil {
		t.Fatal("expected error for bad channel")
	}
	if calls := a.L.GetGlobal("calls").String(); calls != "1" {
		t.Fatalf("controller ran %s times after error", calls)
	}
	if len(r.out.writes) != 0 {
		t.Fatalf("unexpected writes: %v", r.out.writes)
	}

	applet.Render(a)
	if got := r.gfx.printed(); got != "Bad|Script|error|" {
		t.Fatalf("printed: %q", got)
	}
}

func TestLuaLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{`name = `, "load script"},
		{`x = 1`, "does not set name"},
		{`name = "Far too long name"`, "longer than"},
	} {
		_, err := NewLua(tc.src)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("NewLua(%q): got %v want %q", tc.src, err, tc.want)
		}
	}
}

func TestLuaNoOSLibrary(t *testing.T) {
	_, err := NewLua(`name = "Sys" os.exit(1)`)
	if err == nil {
		t.Fatal("os library should not be available")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if len(a.Name()) > applet.MaxNameLen {
			t.Fatalf("%s: name %q too long", name, a.Name())
		}
	}
	if _, err := New("nope"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("New(nope): got %v want ErrUnknown", err)
	}

	path := filepath.Join(t.TempDir(), "echo.lua")
	if err := os.WriteFile(path, []byte(echoScript), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	a, err := New("lua=" + path)
	if err != nil {
		t.Fatalf("New(lua): %v", err)
	}
	if a.Name() != "Echo" {
		t.Fatalf("lua Name: %q", a.Name())
	}
	if _, err := New("lua=" + filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestLuaDrawingHelpers(t *testing.T) {
	a, err := NewLua(`
name = "Bars"
function view()
  gfxButterflyChannel(true)
  gfxPrint(1, 2, "v=")
  gfxPrintMore(In(0))
end
`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer a.Close()

	r := newRig()
	r.bind(applet.Left, a)
	r.in[0] = 3900
	applet.Tick(a)
	applet.Render(a)
	if a.Err() != nil {
		t.Fatalf("Err: %v", a.Err())
	}

	for _, want := range []string{
		"frame 32 15 31 1", // input 1 at half scale, above its output
		"rect 64 25 0 2",
		"frame 63 40 0 1",
		"rect 64 50 0 2",
	} {
		if !r.gfx.has(want) {
			t.Fatalf("missing %q in %q", want, r.gfx.calls)
		}
	}
	if got := r.gfx.printed(); got != "v=|3900|" {
		t.Fatalf("printed: %q", got)
	}
}
