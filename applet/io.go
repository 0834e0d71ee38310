package applet

// Inputs samples the analog input converters.
type Inputs interface {
	Sample(ch int) int
}

// Outputs drives the analog output converters. Writes never fail.
type Outputs interface {
	Write(ch, value, octave int)
}

// Digitals reports the state of the digital trigger/gate lines.
type Digitals interface {
	// Clocked reports a rising edge on line since the previous call.
	Clocked(line int) bool
	// Gated reports the current level of line.
	Gated(line int) bool
}

// Bus is the physical I/O surface shared by both hemispheres.
//
// It remembers the last value written to each output channel, which is what a forwarding
// applet on the Right hemisphere reads as its inputs.
type Bus struct {
	in  Inputs
	out Outputs
	dig Digitals

	last [PhysicalChannels]int
}

// NewBus wraps the converter and digital line drivers.
func NewBus(in Inputs, out Outputs, dig Digitals) *Bus {
	return &Bus{in: in, out: out, dig: dig}
}

// Output returns the last value written to physical output channel ch.
func (b *Bus) Output(ch int) int { return b.last[ch] }

func (b *Bus) write(ch, value, octave int) {
	b.last[ch] = value
	if b.out != nil {
		b.out.Write(ch, value, octave)
	}
}

func (b *Bus) sample(ch int) int {
	if b.in == nil {
		return 0
	}
	return b.in.Sample(ch)
}

// digitalLines maps hemisphere and logical channel to a physical digital line.
var digitalLines = [2][Channels]int{
	{0, 1},
	{2, 3},
}

// io refreshes cached inputs and advances the timers. It runs once per tick.
func (b *Base) io() {
	fwd := 0
	if b.forwarding {
		fwd = b.binding.ioOffset
	}
	for ch := 0; ch < Channels; ch++ {
		phys := ch + b.binding.ioOffset - fwd
		if b.forwarding {
			b.inputs[ch] = b.bus.Output(phys)
		} else {
			b.inputs[ch] = b.bus.sample(phys)
		}
		b.clockTick(ch)
	}
	b.cursor.Tick()
}

// In returns the input sample for logical channel ch taken at the start of this tick.
func (b *Base) In(ch int) int {
	return b.inputs[ch]
}

// Out writes value to logical output ch.
func (b *Base) Out(ch, value int) {
	b.OutOctave(ch, value, 0)
}

// OutOctave writes value plus an octave offset to logical output ch.
func (b *Base) OutOctave(ch, value, octave int) {
	b.outputs[ch] = value
	b.bus.write(ch+b.binding.ioOffset, value, octave)
}

// Output returns the last value written to logical output ch.
func (b *Base) Output(ch int) int {
	return b.outputs[ch]
}

// Clock reports a rising edge on this hemisphere's digital input ch.
func (b *Base) Clock(ch int) bool {
	line := digitalLines[b.binding.hemisphere][ch]
	if b.bus.dig == nil {
		return false
	}
	return b.bus.dig.Clocked(line)
}

// Gate reports the level of this hemisphere's digital input ch.
func (b *Base) Gate(ch int) bool {
	line := digitalLines[b.binding.hemisphere][ch]
	if b.bus.dig == nil {
		return false
	}
	return b.bus.dig.Gated(line)
}

// Forwarding reports whether inputs are read from the Left hemisphere's outputs.
func (b *Base) Forwarding() bool { return b.forwarding }

func (b *Base) setForwarding(on bool) {
	b.forwarding = on && b.binding.hemisphere == Right
}
