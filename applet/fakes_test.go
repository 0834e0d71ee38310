package applet

import "fmt"

type fakeInputs [PhysicalChannels]int

func (f *fakeInputs) Sample(ch int) int { return f[ch] }

type write struct {
	ch, value, octave int
}

type fakeOutputs struct {
	writes []write
}

func (f *fakeOutputs) Write(ch, value, octave int) {
	f.writes = append(f.writes, write{ch: ch, value: value, octave: octave})
}

func (f *fakeOutputs) count(ch int) int {
	n := 0
	for _, w := range f.writes {
		if w.ch == ch {
			n++
		}
	}
	return n
}

type fakeDigitals struct {
	clocked [PhysicalChannels]bool
	gated   [PhysicalChannels]bool
}

func (f *fakeDigitals) Clocked(line int) bool { return f.clocked[line] }
func (f *fakeDigitals) Gated(line int) bool   { return f.gated[line] }

// fakeGraphics records every call as a string.
type fakeGraphics struct {
	calls []string
}

func (g *fakeGraphics) add(format string, args ...any) {
	g.calls = append(g.calls, fmt.Sprintf(format, args...))
}

func (g *fakeGraphics) Pixel(x, y int)          { g.add("pixel %d %d", x, y) }
func (g *fakeGraphics) Line(x, y, x2, y2 int)   { g.add("line %d %d %d %d", x, y, x2, y2) }
func (g *fakeGraphics) Rect(x, y, w, h int)     { g.add("rect %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Frame(x, y, w, h int)    { g.add("frame %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Invert(x, y, w, h int)   { g.add("invert %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Circle(x, y, r int)      { g.add("circle %d %d %d", x, y, r) }
func (g *fakeGraphics) SetPrintPos(x, y int)    { g.add("pos %d %d", x, y) }
func (g *fakeGraphics) Print(s string)          { g.add("print %s", s) }
func (g *fakeGraphics) reset()                  { g.calls = nil }
func (g *fakeGraphics) has(call string) bool {
	for _, c := range g.calls {
		if c == call {
			return true
		}
	}
	return false
}

type testApplet struct {
	Base

	name        string
	starts      int
	controllers int
	views       int
}

func (a *testApplet) Name() string {
	if a.name == "" {
		return "Test"
	}
	return a.name
}
func (a *testApplet) Start()      { a.starts++ }
func (a *testApplet) Controller() { a.controllers++ }
func (a *testApplet) View()       { a.views++ }
func (a *testApplet) Help() Help {
	return Help{HelpDigitals: "Clock", HelpCVs: "Level", HelpOuts: "Out", HelpEncoder: "Div"}
}

type rig struct {
	in  *fakeInputs
	out *fakeOutputs
	dig *fakeDigitals
	gfx *fakeGraphics
	bus *Bus
}

func newRig() *rig {
	r := &rig{
		in:  &fakeInputs{},
		out: &fakeOutputs{},
		dig: &fakeDigitals{},
		gfx: &fakeGraphics{},
	}
	r.bus = NewBus(r.in, r.out, r.dig)
	return r
}

func (r *rig) bind(h Hemisphere) *testApplet {
	a := &testApplet{}
	if err := Bind(a, h, r.bus, r.gfx); err != nil {
		panic(err)
	}
	return a
}
