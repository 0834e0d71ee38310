package applet

// ClockTicks is the default clock output pulse length (100 ticks, about 6 ms).
const ClockTicks = 100

// clockOctave is the octave offset used as the high level of a clock pulse.
const clockOctave = 5

// ClockOut starts a pulse of ClockTicks on output ch.
func (b *Base) ClockOut(ch int) {
	b.ClockOutTicks(ch, ClockTicks)
}

// ClockOutTicks raises output ch now and drops it to 0 after ticks ticks.
//
// A pulse started while another is pending on the same channel replaces it.
func (b *Base) ClockOutTicks(ch, ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	b.clock[ch] = ticks
	b.OutOctave(ch, 0, clockOctave)
}

func (b *Base) clockTick(ch int) {
	if b.clock[ch] > 0 {
		b.clock[ch]--
		if b.clock[ch] == 0 {
			b.Out(ch, 0)
		}
	}
}
