//go:build !tinygo

package app

import (
	"hemisphere/hal"

	"github.com/pkg/errors"
)

// capture writes the host-only outputs: a WAV of the CV outputs and a final screenshot.
type capture struct {
	rec        *hal.Recorder
	record     string
	screenshot string
	fb         hal.Framebuffer
}

func newCapture(h hal.HAL, fb hal.Framebuffer, cfg Config) (*capture, error) {
	c := &capture{record: cfg.Record, screenshot: cfg.Screenshot, fb: fb}
	if cfg.Record != "" {
		dac := h.DAC()
		if dac == nil {
			return nil, errors.New("app: record: no DAC")
		}
		c.rec = hal.NewRecorder(dac, cfg.TickPeriod)
	}
	return c, nil
}

func (c *capture) tick() {
	if c.rec != nil {
		c.rec.Capture()
	}
}

func (c *capture) close(logf func(string, ...any)) error {
	if c.rec != nil {
		if err := c.rec.WriteFile(c.record); err != nil {
			return err
		}
		logf("hemisphere: recorded %d frames at %d Hz to %s", c.rec.Frames(), c.rec.SampleRate(), c.record)
		if c.rec.Truncated() {
			logf("hemisphere: recording stopped at the %v limit", hal.MaxRecordDuration)
		}
	}
	if c.screenshot != "" {
		if err := hal.WriteScreenshot(c.fb, c.screenshot); err != nil {
			return err
		}
		logf("hemisphere: screenshot %s", c.screenshot)
	}
	return nil
}
