//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const (
	hostDisplayWidth  = 128
	hostDisplayHeight = 64
	hostChannels      = 4

	// DefaultTickPeriod matches the module's 16.667 kHz interrupt.
	DefaultTickPeriod = 60 * time.Microsecond
)

// HostConfig describes the simulated module on the host.
type HostConfig struct {
	// CV holds fixed input levels for the four CV inputs.
	CV [hostChannels]int
	// LFOChannel, if in 0..3, replaces that input with a triangle LFO.
	LFOChannel int
	LFOPeriod  time.Duration
	LFOLevel   int
	// ClockPeriod, if non-zero, drives digital input 1 from a free-running clock.
	ClockPeriod time.Duration
	// TickPeriod is the simulated interrupt period.
	TickPeriod time.Duration
}

// DefaultHostConfig returns a module with all inputs at zero and no clock.
func DefaultHostConfig() HostConfig {
	return HostConfig{LFOChannel: -1, TickPeriod: DefaultTickPeriod}
}

type hostHAL struct {
	logger *hostLogger
	fb     *monoFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	adc    *virtualADC
	dac    *virtualDAC
	dig    *triggers
}

// New returns a host HAL with the default configuration.
func New() HAL {
	h, err := newHostHAL(DefaultHostConfig())
	if err != nil {
		panic(err)
	}
	return h
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) (HAL, error) {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) (*hostHAL, error) {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = DefaultTickPeriod
	}
	logger := &hostLogger{w: os.Stdout}

	adc := newVirtualADC(cfg.CV[:])
	if cfg.LFOPeriod > 0 {
		adc.withLFO(cfg.LFOChannel, uint64(cfg.LFOPeriod/cfg.TickPeriod), cfg.LFOLevel)
	}

	pins := make([]TriggerPin, 0, hostChannels)
	for i := 0; i < hostChannels; i++ {
		name := fmt.Sprintf("TR%d", i+1)
		if i == 0 && cfg.ClockPeriod > 0 {
			pins = append(pins, newClockPin(name, cfg.ClockPeriod, nil))
			continue
		}
		pins = append(pins, newPatchPin(name))
	}
	dig, err := newTriggers(pins, PullNone)
	if err != nil {
		return nil, err
	}

	return &hostHAL{
		logger: logger,
		fb:     newMonoFramebuffer(hostDisplayWidth, hostDisplayHeight, nil),
		kbd:    newHostKeyboard(),
		t:      newHostTime(cfg.TickPeriod),
		adc:    adc,
		dac:    newVirtualDAC(hostChannels),
		dig:    dig,
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) ADC() ADC         { return h.adc }
func (h *hostHAL) DAC() DAC         { return h.dac }
func (h *hostHAL) Digital() Digital { return h.dig }

type hostDisplay struct {
	fb *monoFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
