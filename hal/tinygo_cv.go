//go:build tinygo && baremetal

package hal

import "machine"

// pinADC reads the CV inputs. The jacks are inverting and centred on the converter midpoint.
type pinADC struct {
	adc [4]machine.ADC
}

// adcFullScale is the converter count span that corresponds to the full CV range.
const adcFullScale = 0x8000

func newPinADC(pins [4]machine.Pin) *pinADC {
	machine.InitADC()
	a := &pinADC{}
	for i, p := range pins {
		a.adc[i] = machine.ADC{Pin: p}
		a.adc[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *pinADC) Channels() int { return len(a.adc) }

// Sample returns the input in DAC units, 7800 at full scale.
func (a *pinADC) Sample(ch int) int {
	if ch < 0 || ch >= len(a.adc) {
		return 0
	}
	raw := int(a.adc[ch].Get())
	return (adcFullScale - raw) * 7800 / adcFullScale
}

// spiDAC drives a DAC8565 quad 16-bit converter.
type spiDAC struct {
	bus   *machine.SPI
	cs    machine.Pin
	value [4]int
	oct   [4]int
	tx    [3]byte
}

// dacZero is the converter code for 0 V; one octave is dacOctave codes.
const (
	dacZero   = 0x8000
	dacOctave = 0x0C00
)

func newSPIDAC(bus *machine.SPI, cs machine.Pin) *spiDAC {
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()
	return &spiDAC{bus: bus, cs: cs}
}

func (d *spiDAC) Channels() int { return len(d.value) }

func (d *spiDAC) Write(ch, value, octave int) {
	if ch < 0 || ch >= len(d.value) {
		return
	}
	d.value[ch] = value
	d.oct[ch] = octave

	code := dacZero + (value+octave*OctaveUnits)*dacOctave/OctaveUnits
	if code < 0 {
		code = 0
	}
	if code > 0xFFFF {
		code = 0xFFFF
	}
	// Write-and-update command for channel ch.
	d.tx[0] = 0x10 | byte(ch<<1)
	d.tx[1] = byte(code >> 8)
	d.tx[2] = byte(code)
	d.cs.Low()
	_ = d.bus.Tx(d.tx[:], nil)
	d.cs.High()
}

func (d *spiDAC) Level(ch int) int {
	if ch < 0 || ch >= len(d.value) {
		return 0
	}
	return d.value[ch] + d.oct[ch]*OctaveUnits
}
