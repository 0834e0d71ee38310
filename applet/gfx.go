package applet

import "strconv"

// Graphics is the shared drawing surface, in physical coordinates.
type Graphics interface {
	Pixel(x, y int)
	Line(x, y, x2, y2 int)
	// Rect draws a filled rectangle.
	Rect(x, y, w, h int)
	// Frame draws a rectangle outline.
	Frame(x, y, w, h int)
	Invert(x, y, w, h int)
	Circle(x, y, r int)
	SetPrintPos(x, y int)
	Print(s string)
}

// Bar widths in pixels at MaxCV.
const (
	outputBarWidth = 60
	inputBarWidth  = 63
)

// Butterfly layouts: rows for each channel's input and output bar.
var (
	butterflyByType = struct{ in, out [Channels]int }{
		in:  [Channels]int{15, 25},
		out: [Channels]int{35, 50},
	}
	butterflyByChannel = struct{ in, out [Channels]int }{
		in:  [Channels]int{15, 40},
		out: [Channels]int{25, 50},
	}
)

// BottomAlign returns the y coordinate that puts an h pixel tall item on the bottom row.
func BottomAlign(h int) int { return 62 - h }

func (b *Base) GfxPixel(x, y int) {
	b.gfx.Pixel(x+b.binding.gfxOffset, y)
}

func (b *Base) GfxLine(x, y, x2, y2 int) {
	b.gfx.Line(x+b.binding.gfxOffset, y, x2+b.binding.gfxOffset, y2)
}

func (b *Base) GfxRect(x, y, w, h int) {
	b.gfx.Rect(x+b.binding.gfxOffset, y, w, h)
}

func (b *Base) GfxFrame(x, y, w, h int) {
	b.gfx.Frame(x+b.binding.gfxOffset, y, w, h)
}

func (b *Base) GfxInvert(x, y, w, h int) {
	b.gfx.Invert(x+b.binding.gfxOffset, y, w, h)
}

func (b *Base) GfxCircle(x, y, r int) {
	b.gfx.Circle(x+b.binding.gfxOffset, y, r)
}

// GfxPrint prints s with its top-left corner at (x, y).
func (b *Base) GfxPrint(x, y int, s string) {
	b.gfx.SetPrintPos(x+b.binding.gfxOffset, y)
	b.gfx.Print(s)
}

// GfxPrintInt prints n with its top-left corner at (x, y).
func (b *Base) GfxPrintInt(x, y, n int) {
	b.GfxPrint(x, y, strconv.Itoa(n))
}

// GfxPrintMore continues printing where the previous print ended.
func (b *Base) GfxPrintMore(s string) {
	b.gfx.Print(s)
}

// GfxCursor underlines w pixels at (x, y) while the cursor blink is on.
func (b *Base) GfxCursor(x, y, w int) {
	if b.cursor.Visible() {
		b.GfxLine(x, y, x+w-1, y)
	}
}

// GfxHeader prints the applet title with a double rule beneath it.
func (b *Base) GfxHeader(s string) {
	b.GfxPrint(1, 2, s)
	b.GfxLine(0, 10, 62, 10)
	b.GfxLine(0, 12, 62, 12)
}

// GfxOutputBar draws a filled bar for output ch, growing inward from the outer edge.
func (b *Base) GfxOutputBar(ch, y int, compact bool) {
	width := ProportionCV(b.outputs[ch], outputBarWidth)
	if width < 0 {
		width = 0
	}
	height := 12
	if compact {
		height = 2
	}
	x := 0
	if b.binding.hemisphere == Left {
		x = 64 - width
	}
	b.GfxRect(x, y, width, height)
}

// GfxInputBar draws an outlined bar for input ch, growing inward from the outer edge.
func (b *Base) GfxInputBar(ch, y int, compact bool) {
	width := ProportionCV(b.inputs[ch], inputBarWidth)
	if width < 0 {
		width = 0
	}
	height := 6
	if compact {
		height = 1
	}
	x := 0
	if b.binding.hemisphere == Left {
		x = 63 - width
	}
	b.GfxFrame(x, y, width, height)
}

// GfxButterfly draws both inputs above both outputs.
func (b *Base) GfxButterfly(compact bool) {
	for ch := 0; ch < Channels; ch++ {
		b.GfxInputBar(ch, butterflyByType.in[ch], compact)
		b.GfxOutputBar(ch, butterflyByType.out[ch], compact)
	}
}

// GfxButterflyChannel draws each channel's input directly above its output.
func (b *Base) GfxButterflyChannel(compact bool) {
	for ch := 0; ch < Channels; ch++ {
		b.GfxInputBar(ch, butterflyByChannel.in[ch], compact)
		b.GfxOutputBar(ch, butterflyByChannel.out[ch], compact)
	}
}
