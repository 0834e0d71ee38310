// Package app wires the hardware, the two hemispheres and the front panel together.
package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"hemisphere/applet"
	"hemisphere/applets"
	"hemisphere/graphics"
	"hemisphere/hal"
	"hemisphere/internal/buildinfo"
	"hemisphere/manager"

	"github.com/pkg/errors"
)

// maxCatchUp bounds the ticks run in one step after a stall; older ticks are dropped.
const maxCatchUp = 4096

// FramePeriod is how often Run redraws the display.
const FramePeriod = time.Second / 30

// ErrPanic is returned by Step when an applet panicked. The display then shows the panic.
var ErrPanic = errors.New("applet panic")

type Config struct {
	// Left and Right name the applets to load; see applets.New.
	Left, Right string
	// Forward routes the Right inputs from the Left outputs.
	Forward bool
	// Record, if set, is a WAV file receiving the four outputs at the tick rate.
	Record string
	// Screenshot, if set, is a BMP file receiving the last frame.
	Screenshot string
	// TickPeriod is the interrupt period, used as the recording sample period.
	TickPeriod time.Duration
}

// DefaultConfig loads a clock divider on the left and attenuverters on the right.
func DefaultConfig() Config {
	return Config{Left: "clockdiv", Right: "attenoff"}
}

type App struct {
	log    hal.Logger
	screen *graphics.Surface
	m      *manager.Manager
	ticks  <-chan uint64
	keys   <-chan hal.KeyEvent
	out    *capture

	seq     uint64
	dropped uint64
}

// New builds the module on h and loads the configured applets.
func New(h hal.HAL, cfg Config) (*App, error) {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}

	a := &App{
		log:    h.Logger(),
		screen: graphics.New(fb),
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
	}

	a.logf("hemisphere: build %s", buildinfo.Short())

	bus := applet.NewBus(inputs(h.ADC()), outputs(h.DAC()), digitals(h.Digital()))
	a.m = manager.New(a.log, bus, a.screen)

	for _, side := range []struct {
		h    applet.Hemisphere
		name string
	}{
		{applet.Left, cfg.Left},
		{applet.Right, cfg.Right},
	} {
		if side.name == "" {
			continue
		}
		ap, err := applets.New(side.name)
		if err != nil {
			return nil, errors.Wrapf(err, "app: %s", side.h)
		}
		if err := a.m.Load(side.h, ap); err != nil {
			return nil, err
		}
	}
	a.m.SetForwarding(cfg.Forward)

	out, err := newCapture(h, fb, cfg)
	if err != nil {
		return nil, err
	}
	a.out = out
	return a, nil
}

// The hal interfaces may be nil; a typed nil must not reach the bus.
func inputs(adc hal.ADC) applet.Inputs {
	if adc == nil {
		return nil
	}
	return adc
}

func outputs(dac hal.DAC) applet.Outputs {
	if dac == nil {
		return nil
	}
	return dac
}

func digitals(dig hal.Digital) applet.Digitals {
	if dig == nil {
		return nil
	}
	return dig
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Manager returns the hemisphere manager.
func (a *App) Manager() *manager.Manager { return a.m }

// Dropped returns the number of ticks skipped because a step fell too far behind.
func (a *App) Dropped() uint64 { return a.dropped }

// Step runs the ticks that elapsed since the previous step, applies panel input and
// redraws the display.
func (a *App) Step() (err error) {
	defer func() {
		if v := recover(); v != nil {
			a.fault(v, debug.Stack())
			err = errors.Wrapf(ErrPanic, "%v", v)
		}
	}()
	a.runTicks()
	a.pollKeys()
	return a.m.Render()
}

func (a *App) runTicks() {
	if a.ticks == nil {
		return
	}
	latest := a.seq
drain:
	for {
		select {
		case seq := <-a.ticks:
			if seq > latest {
				latest = seq
			}
		default:
			break drain
		}
	}
	n := latest - a.seq
	a.seq = latest
	if n > maxCatchUp {
		a.dropped += n - maxCatchUp
		n = maxCatchUp
	}
	for i := uint64(0); i < n; i++ {
		a.m.Tick()
		a.out.tick()
	}
}

func (a *App) pollKeys() {
	if a.keys == nil {
		return
	}
	for {
		select {
		case ev := <-a.keys:
			a.key(ev)
		default:
			return
		}
	}
}

// Close writes any requested recording and screenshot.
func (a *App) Close() error {
	return a.out.close(a.logf)
}

// Run builds the module and redraws it every FramePeriod until an applet panics.
func Run(h hal.HAL, cfg Config) {
	a, err := New(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}
	frame := time.NewTicker(FramePeriod)
	defer frame.Stop()
	for range frame.C {
		if err := a.Step(); err != nil {
			a.logf("hemisphere: %v", err)
			if errors.Is(err, ErrPanic) {
				select {}
			}
		}
	}
}
