//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"hemisphere/app"
	"hemisphere/applets"
	"hemisphere/hal"
)

func main() {
	var (
		cfg      = app.DefaultConfig()
		headless hal.HeadlessConfig
		host     = hal.DefaultHostConfig()
		cv       string
		scale    int
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&headless.Fast, "fast", false, "Run headless frames back to back instead of in real time.")
	flag.BoolVar(&headless.Terminal, "ascii", false, "Preview the display in the terminal in headless mode.")
	flag.IntVar(&headless.TerminalEvery, "ascii-every", 1, "Redraw the terminal preview every N frames.")
	flag.IntVar(&scale, "scale", 4, "Window scale.")
	flag.StringVar(&cfg.Left, "left", cfg.Left, "Left applet ("+strings.Join(applets.Names(), ", ")+", or lua=<file>).")
	flag.StringVar(&cfg.Right, "right", cfg.Right, "Right applet.")
	flag.BoolVar(&cfg.Forward, "forward", false, "Feed the left outputs to the right inputs.")
	flag.StringVar(&cv, "cv", "", "Fixed CV input levels, comma separated (7680 = 5 octaves).")
	flag.IntVar(&host.LFOChannel, "lfo", -1, "Replace CV input N (0-3) with a triangle LFO.")
	flag.DurationVar(&host.LFOPeriod, "lfo-period", 2*time.Second, "LFO period.")
	flag.IntVar(&host.LFOLevel, "lfo-level", 3840, "LFO peak level.")
	flag.DurationVar(&host.ClockPeriod, "clock", 0, "Drive digital input 1 from a clock with this period.")
	flag.DurationVar(&host.TickPeriod, "tick", hal.DefaultTickPeriod, "Control tick period.")
	flag.StringVar(&cfg.Record, "record", "", "Record the CV outputs to this WAV file (first "+hal.MaxRecordDuration.String()+" only).")
	flag.StringVar(&cfg.Screenshot, "screenshot", "", "Save the last frame to this BMP file.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nKeys: %s\n", app.Keys)
	}
	flag.Parse()

	var err error
	if host.CV, err = app.ParseCV(cv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.TickPeriod = host.TickPeriod
	headless.Host = host

	var a *app.App
	newApp := func(h hal.HAL) (func() error, error) {
		var err error
		a, err = app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, headless, newApp)
		if err == context.Canceled {
			err = nil
		}
	} else {
		err = hal.RunWindow(hal.WindowConfig{Scale: scale, Host: host}, newApp)
	}
	if a != nil {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
