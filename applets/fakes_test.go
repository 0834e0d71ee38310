package applets

import (
	"fmt"
	"strings"

	"hemisphere/applet"
)

type fakeInputs [applet.PhysicalChannels]int

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

// pulses counts clock pulse starts on physical channel ch.
func (f *fakeOutputs) pulses(ch int) int {
	n := 0
	for _, w := range f.writes {
		if w.ch == ch && w.octave == 5 {
			n++
		}
	}
	return n
}

func (f *fakeOutputs) last(ch int) (write, bool) {
	for i := len(f.writes) - 1; i >= 0; i-- {
		if f.writes[i].ch == ch {
			return f.writes[i], true
		}
	}
	return write{}, false
}

type fakeDigitals struct {
	clocked [applet.PhysicalChannels]bool
	gated   [applet.PhysicalChannels]bool
}

func (f *fakeDigitals) Clocked(line int) bool { return f.clocked[line] }
func (f *fakeDigitals) Gated(line int) bool   { return f.gated[line] }

type fakeGraphics struct {
	calls []string
}

func (g *fakeGraphics) add(format string, args ...any) {
	g.calls = append(g.calls, fmt.Sprintf(format, args...))
}

func (g *fakeGraphics) Pixel(x, y int)        { g.add("pixel %d %d", x, y) }
func (g *fakeGraphics) Line(x, y, x2, y2 int) { g.add("line %d %d %d %d", x, y, x2, y2) }
func (g *fakeGraphics) Rect(x, y, w, h int)   { g.add("rect %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Frame(x, y, w, h int)  { g.add("frame %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Invert(x, y, w, h int) { g.add("invert %d %d %d %d", x, y, w, h) }
func (g *fakeGraphics) Circle(x, y, r int)    { g.add("circle %d %d %d", x, y, r) }
func (g *fakeGraphics) SetPrintPos(x, y int)  { g.add("pos %d %d", x, y) }
func (g *fakeGraphics) Print(s string)        { g.add("print %s", s) }

func (g *fakeGraphics) has(call string) bool {
	for _, c := range g.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (g *fakeGraphics) printed() string {
	var b strings.Builder
	for _, c := range g.calls {
		if s, ok := strings.CutPrefix(c, "print "); ok {
			b.WriteString(s)
			b.WriteByte('|')
		}
	}
	return b.String()
}

type rig struct {
	in  *fakeInputs
	out *fakeOutputs
	dig *fakeDigitals
	gfx *fakeGraphics
	bus *applet.Bus
}

func newRig() *rig {
	r := &rig{
		in:  &fakeInputs{},
		out: &fakeOutputs{},
		dig: &fakeDigitals{},
		gfx: &fakeGraphics{},
	}
	r.bus = applet.NewBus(r.in, r.out, r.dig)
	return r
}

func (r *rig) bind(h applet.Hemisphere, a applet.Applet) {
	if err := applet.Bind(a, h, r.bus, r.gfx); err != nil {
		panic(err)
	}
}
