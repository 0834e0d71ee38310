package applet

// Help sections.
const (
	HelpDigitals = iota
	HelpCVs
	HelpOuts
	HelpEncoder
	helpSections
)

// Help holds one short description per help section.
type Help [helpSections]string

var helpLabels = [helpSections]string{
	HelpDigitals: "Dig",
	HelpCVs:      "CV",
	HelpOuts:     "Out",
	HelpEncoder:  "Enc",
}

// HelpActive reports whether the help screen replaces the applet view.
func (b *Base) HelpActive() bool { return b.help }

func (b *Base) toggleHelp() { b.help = !b.help }

func (b *Base) drawHelp(name string, help Help) {
	b.GfxHeader(name)
	for section := 0; section < helpSections; section++ {
		y := section*12 + 16
		b.GfxPrint(0, y, helpLabels[section])
		b.GfxInvert(0, y-1, 19, 9)
		b.GfxPrint(20, y, help[section])
	}
}
