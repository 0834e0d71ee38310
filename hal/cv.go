package hal

// virtualADC serves fixed levels, with an optional triangle LFO on one channel.
type virtualADC struct {
	values []int

	lfoChannel int
	lfoPeriod  uint64
	lfoLevel   int
	lfoPhase   uint64
}

func newVirtualADC(values []int) *virtualADC {
	v := make([]int, len(values))
	copy(v, values)
	return &virtualADC{values: v, lfoChannel: -1}
}

// withLFO replaces channel ch with a triangle wave of the given period (in samples) that
// sweeps 0..level.
func (a *virtualADC) withLFO(ch int, period uint64, level int) *virtualADC {
	if ch < 0 || ch >= len(a.values) || period < 2 {
		return a
	}
	a.lfoChannel = ch
	a.lfoPeriod = period
	a.lfoLevel = level
	return a
}

func (a *virtualADC) Channels() int { return len(a.values) }

func (a *virtualADC) Sample(ch int) int {
	if ch < 0 || ch >= len(a.values) {
		return 0
	}
	if ch == a.lfoChannel {
		return a.triangle()
	}
	return a.values[ch]
}

func (a *virtualADC) set(ch, value int) {
	if ch < 0 || ch >= len(a.values) {
		return
	}
	a.values[ch] = value
}

func (a *virtualADC) triangle() int {
	half := a.lfoPeriod / 2
	p := a.lfoPhase % a.lfoPeriod
	a.lfoPhase++
	if p < half {
		return int(uint64(a.lfoLevel) * p / half)
	}
	return int(uint64(a.lfoLevel) * (a.lfoPeriod - p) / (a.lfoPeriod - half))
}

// virtualDAC remembers what was written to each channel.
type virtualDAC struct {
	value  []int
	octave []int
}

func newVirtualDAC(channels int) *virtualDAC {
	return &virtualDAC{value: make([]int, channels), octave: make([]int, channels)}
}

func (d *virtualDAC) Channels() int { return len(d.value) }

func (d *virtualDAC) Write(ch, value, octave int) {
	if ch < 0 || ch >= len(d.value) {
		return
	}
	d.value[ch] = value
	d.octave[ch] = octave
}

func (d *virtualDAC) Level(ch int) int {
	if ch < 0 || ch >= len(d.value) {
		return 0
	}
	return d.value[ch] + d.octave[ch]*OctaveUnits
}
