//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Hz is the frame rate.
	Hz int
	// Frames stops the runner after N frames (0 = run forever).
	Frames uint64
	// Fast runs frames back to back instead of pacing them in real time.
	Fast bool
	// Terminal previews the display on stdout and reads keys from stdin.
	Terminal      bool
	TerminalEvery int
	Host          HostConfig
}

// RunHeadless runs the module without opening a window.
//
// Each frame emits exactly one frame's worth of ticks, so runs are reproducible. A consumer
// that drains the tick stream once per frame always sees the newest sequence number.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h, err := newHostHAL(cfg.Host)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	perFrame := uint64(d / h.t.period)
	if perFrame == 0 {
		perFrame = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var preview *terminalPreview
	if cfg.Terminal {
		preview = newTerminalPreview(os.Stdout, cfg.TerminalEvery)
		if err := preview.startInput(ctx, os.Stdin, h.kbd, cancel); err != nil {
			return err
		}
		defer preview.restore(int(os.Stdin.Fd()))
	}
	var pulsed []int

	var pace <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var frame uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		for _, line := range pulsed {
			h.dig.drive(line, false)
		}
		pulsed = pulsed[:0]
		if preview != nil {
			pulsed = drainPulses(preview.pulses, pulsed)
			for _, line := range pulsed {
				h.dig.drive(line, true)
			}
		}

		h.t.stepN(perFrame)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if preview != nil {
			if err := preview.render(h.fb); err != nil {
				return err
			}
		}
		frame++
		if cfg.Frames > 0 && frame >= cfg.Frames {
			return nil
		}
	}
}

func drainPulses(ch <-chan int, dst []int) []int {
	for {
		select {
		case line := <-ch:
			dst = append(dst, line)
		default:
			return dst
		}
	}
}
