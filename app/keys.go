package app

import (
	"hemisphere/applet"
	"hemisphere/hal"
)

type panelAction uint8

const (
	encoderDown panelAction = iota
	encoderUp
	button
	help
)

type panelKey struct {
	h      applet.Hemisphere
	action panelAction
}

// runeKeys is the host keyboard layout of the front panel. Digits 1-4 are the digital
// inputs and are handled by the hal.
var runeKeys = map[rune]panelKey{
	'q': {applet.Left, encoderDown},
	'w': {applet.Left, encoderUp},
	'e': {applet.Left, button},
	'r': {applet.Left, help},
	'u': {applet.Right, encoderDown},
	'i': {applet.Right, encoderUp},
	'o': {applet.Right, button},
	'p': {applet.Right, help},
}

// Keys describes the panel layout for usage text.
const Keys = "q/w e r: left encoder, button, help; u/i o p: right encoder, button, help; " +
	"f or Tab: forwarding; F1/F2: help; 1-4: digital inputs"

func (a *App) key(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyTab:
		a.m.SetForwarding(!a.m.Forwarding())
		return
	case hal.KeyF1:
		a.m.ToggleHelp(applet.Left)
		return
	case hal.KeyF2:
		a.m.ToggleHelp(applet.Right)
		return
	}
	if ev.Rune == 'f' {
		a.m.SetForwarding(!a.m.Forwarding())
		return
	}
	k, ok := runeKeys[ev.Rune]
	if !ok {
		return
	}
	switch k.action {
	case encoderDown:
		a.m.Encoder(k.h, -1)
	case encoderUp:
		a.m.Encoder(k.h, 1)
	case button:
		a.m.Button(k.h)
	case help:
		a.m.ToggleHelp(k.h)
	}
}
