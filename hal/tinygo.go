//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// Teensy 4.0 pin assignment of the module.
var (
	cvPins      = [4]machine.Pin{machine.A0, machine.A1, machine.A2, machine.A3}
	triggerPins = [4]machine.Pin{machine.D0, machine.D1, machine.D2, machine.D3}
)

const (
	oledDC    = machine.D4
	oledReset = machine.D5
	oledCS    = machine.D6
	dacCS     = machine.D10

	// TickPeriod matches the module's 16.667 kHz interrupt.
	TickPeriod = 60 * time.Microsecond
)

type tinyGoHAL struct {
	logger *serialLogger
	fb     Framebuffer
	t      *tinyGoTime
	adc    *pinADC
	dac    *spiDAC
	dig    *triggers
}

// New returns the module HAL.
//
// The OLED and DAC share SPI0; logs go to the USB serial port.
func New() HAL {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		Mode:      1,
	})

	logger := &serialLogger{}

	fb, err := newOLEDFramebuffer(machine.SPI0, oledDC, oledReset, oledCS)
	if err != nil {
		logger.WriteLineString("display: " + err.Error())
		fb = newMonoFramebuffer(128, 64, nil)
	}

	pins := make([]TriggerPin, 0, len(triggerPins))
	for i, p := range triggerPins {
		pins = append(pins, &machinePin{name: "TR" + string(rune('1'+i)), pin: p})
	}
	dig, err := newTriggers(pins, PullUp)
	if err != nil {
		logger.WriteLineString("digital: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		t:      newTinyGoTime(TickPeriod),
		adc:    newPinADC(cvPins),
		dac:    newSPIDAC(machine.SPI0, dacCS),
		dig:    dig,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) ADC() ADC         { return h.adc }
func (h *tinyGoHAL) DAC() DAC         { return h.dac }
func (h *tinyGoHAL) Digital() Digital {
	if h.dig == nil {
		return nil
	}
	return h.dig
}
