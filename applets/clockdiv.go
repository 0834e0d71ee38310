package applets

import "hemisphere/applet"

const maxDivision = 16

// ClockDivider emits a pulse on each output every N clocks on digital input 1.
// Digital input 2 resets both counters. CV 1 and CV 2 add up to 8 to each division.
type ClockDivider struct {
	applet.Base

	div      [applet.Channels]int
	count    [applet.Channels]int
	selected int
}

func NewClockDivider() *ClockDivider { return &ClockDivider{} }

func (a *ClockDivider) Name() string { return "Clock Div" }

func (a *ClockDivider) Start() {
	a.div = [applet.Channels]int{2, 4}
	a.count = [applet.Channels]int{}
	a.selected = 0
}

func (a *ClockDivider) Controller() {
	if a.Clock(1) {
		a.count = [applet.Channels]int{}
	}
	if !a.Clock(0) {
		return
	}
	for ch := 0; ch < applet.Channels; ch++ {
		a.count[ch]++
		if a.count[ch] >= a.division(ch) {
			a.count[ch] = 0
			a.ClockOut(ch)
		}
	}
}

// division is the encoder setting plus CV modulation, clamped to 1..maxDivision.
func (a *ClockDivider) division(ch int) int {
	d := a.div[ch] + applet.Proportion(a.In(ch), applet.MaxCV, 8)
	if d < 1 {
		return 1
	}
	if d > maxDivision {
		return maxDivision
	}
	return d
}

func (a *ClockDivider) View() {
	a.GfxHeader(a.Name())
	for ch := 0; ch < applet.Channels; ch++ {
		y := 15 + ch*10
		a.GfxPrint(1, y, "Ch"+string(rune('1'+ch))+" /")
		a.GfxPrintInt(31, y, a.division(ch))
		if ch == a.selected {
			a.GfxCursor(31, y+8, 13)
		}
	}
	a.GfxButterfly(true)
}

func (a *ClockDivider) Help() applet.Help {
	return applet.Help{
		applet.HelpDigitals: "1=Clock 2=Reset",
		applet.HelpCVs:      "Div. mod",
		applet.HelpOuts:     "Clock A,B",
		applet.HelpEncoder:  "Division",
	}
}

func (a *ClockDivider) OnButtonPress() {
	a.selected = 1 - a.selected
	a.ResetCursor()
}

func (a *ClockDivider) OnEncoderMove(direction int) {
	d := a.div[a.selected] + direction
	if d < 1 {
		d = 1
	}
	if d > maxDivision {
		d = maxDivision
	}
	a.div[a.selected] = d
	a.ResetCursor()
}
