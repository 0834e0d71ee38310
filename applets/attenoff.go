package applets

import "hemisphere/applet"

const (
	offsetStep = 128 // one semitone
	maxLevel   = 100
)

// AttenuateOffset scales each CV input by a level in percent and adds an offset.
type AttenuateOffset struct {
	applet.Base

	level  [applet.Channels]int
	offset [applet.Channels]int
	param  int
}

func NewAttenuateOffset() *AttenuateOffset { return &AttenuateOffset{} }

func (a *AttenuateOffset) Name() string { return "AttenOff" }

func (a *AttenuateOffset) Start() {
	a.level = [applet.Channels]int{maxLevel, maxLevel}
	a.offset = [applet.Channels]int{}
	a.param = 0
}

func (a *AttenuateOffset) Controller() {
	for ch := 0; ch < applet.Channels; ch++ {
		v := applet.Proportion(a.level[ch], maxLevel, a.In(ch)) + a.offset[ch]
		if v > applet.MaxCV {
			v = applet.MaxCV
		}
		if v < -applet.MaxCV {
			v = -applet.MaxCV
		}
		a.Out(ch, v)
	}
}

func (a *AttenuateOffset) View() {
	a.GfxHeader(a.Name())
	for ch := 0; ch < applet.Channels; ch++ {
		x := ch * 32
		a.GfxPrintInt(x+1, 15, a.level[ch])
		a.GfxPrintMore("%")
		a.GfxPrintInt(x+1, 25, a.offset[ch]/offsetStep)
		if a.param == ch*2 {
			a.GfxCursor(x+1, 23, 24)
		}
		if a.param == ch*2+1 {
			a.GfxCursor(x+1, 33, 24)
		}
	}
	a.GfxOutputBar(0, 40, false)
	a.GfxOutputBar(1, 54, true)
}

func (a *AttenuateOffset) Help() applet.Help {
	return applet.Help{
		applet.HelpDigitals: "",
		applet.HelpCVs:      "Inputs 1,2",
		applet.HelpOuts:     "Lvl*In+Off",
		applet.HelpEncoder:  "Level/Offset",
	}
}

func (a *AttenuateOffset) OnButtonPress() {
	a.param = (a.param + 1) % (applet.Channels * 2)
	a.ResetCursor()
}

func (a *AttenuateOffset) OnEncoderMove(direction int) {
	ch := a.param / 2
	if a.param%2 == 0 {
		l := a.level[ch] + direction
		if l > maxLevel {
			l = maxLevel
		}
		if l < -maxLevel {
			l = -maxLevel
		}
		a.level[ch] = l
	} else {
		o := a.offset[ch] + direction*offsetStep
		if o > applet.MaxCV {
			o = applet.MaxCV
		}
		if o < -applet.MaxCV {
			o = -applet.MaxCV
		}
		a.offset[ch] = o
	}
	a.ResetCursor()
}
