//go:build tinygo && baremetal

package main

import (
	"hemisphere/app"
	"hemisphere/hal"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.TickPeriod = hal.TickPeriod
	app.Run(hal.New(), cfg)
}
