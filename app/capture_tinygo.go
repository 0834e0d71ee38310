//go:build tinygo

package app

import (
	"hemisphere/hal"

	"github.com/pkg/errors"
)

type capture struct{}

func newCapture(h hal.HAL, fb hal.Framebuffer, cfg Config) (*capture, error) {
	if cfg.Record != "" || cfg.Screenshot != "" {
		return nil, errors.New("app: recording and screenshots need a host build")
	}
	return &capture{}, nil
}

func (c *capture) tick() {}

func (c *capture) close(logf func(string, ...any)) error { return nil }
