// Package graphics draws the module's shared display.
//
// Coordinates are physical: (0, 0) is the top-left corner of the whole panel. Drawing off the
// panel is clipped.
package graphics

import (
	"image/color"

	"hemisphere/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorOn  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorOff = color.RGBA{A: 0xff}
)

// fontAscent moves a print position from the top of the text to the font baseline.
const fontAscent = 7

// Surface implements the applet drawing primitives on a monochrome framebuffer.
type Surface struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter
	disp *fbDisplay

	printX int
	printY int
}

// New returns a Surface drawing on fb, which must be hal.PixelFormatMono.
func New(fb hal.Framebuffer) *Surface {
	return &Surface{
		fb:   fb,
		font: &proggy.TinySZ8pt7b,
		disp: &fbDisplay{fb: fb},
	}
}

// Width returns the panel width in pixels.
func (s *Surface) Width() int { return s.fb.Width() }

// Height returns the panel height in pixels.
func (s *Surface) Height() int { return s.fb.Height() }

// Clear blanks the whole panel.
func (s *Surface) Clear() {
	s.fb.Clear()
	s.printX, s.printY = 0, 0
}

// Display pushes the frame to the panel.
func (s *Surface) Display() error {
	return s.fb.Present()
}

// Lit reports whether pixel (x, y) is on.
func (s *Surface) Lit(x, y int) bool {
	return hal.MonoPixel(s.fb, x, y)
}

func (s *Surface) Pixel(x, y int) {
	s.disp.set(x, y, true)
}

// Line draws from (x, y) to (x2, y2) inclusive.
func (s *Surface) Line(x, y, x2, y2 int) {
	dx := abs(x2 - x)
	dy := -abs(y2 - y)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		s.disp.set(x, y, true)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Rect fills a w by h rectangle.
func (s *Surface) Rect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.disp.set(px, py, true)
		}
	}
}

// Frame outlines a w by h rectangle.
func (s *Surface) Frame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Line(x, y, x+w-1, y)
	s.Line(x, y+h-1, x+w-1, y+h-1)
	s.Line(x, y, x, y+h-1)
	s.Line(x+w-1, y, x+w-1, y+h-1)
}

// Invert flips every pixel of a w by h rectangle.
func (s *Surface) Invert(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.disp.flip(px, py)
		}
	}
}

// Circle outlines a circle of radius r centred on (x, y).
func (s *Surface) Circle(x, y, r int) {
	if r < 0 {
		return
	}
	px, py := r, 0
	e := 1 - r
	for px >= py {
		s.disp.set(x+px, y+py, true)
		s.disp.set(x+py, y+px, true)
		s.disp.set(x-py, y+px, true)
		s.disp.set(x-px, y+py, true)
		s.disp.set(x-px, y-py, true)
		s.disp.set(x-py, y-px, true)
		s.disp.set(x+py, y-px, true)
		s.disp.set(x+px, y-py, true)
		py++
		if e < 0 {
			e += 2*py + 1
		} else {
			px--
			e += 2*(py-px) + 1
		}
	}
}

// SetPrintPos places the top-left corner of the next Print.
func (s *Surface) SetPrintPos(x, y int) {
	s.printX, s.printY = x, y
}

// Print draws str at the print position and advances it past the text.
func (s *Surface) Print(str string) {
	tinyfont.WriteLine(s.disp, s.font, int16(s.printX), int16(s.printY+fontAscent), str, colorOn)
	_, w := tinyfont.LineWidth(s.font, str)
	s.printX += int(w)
}

// TextWidth returns the pixel width Print would advance for str.
func (s *Surface) TextWidth(str string) int {
	_, w := tinyfont.LineWidth(s.font, str)
	return int(w)
}

// fbDisplay adapts the framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.set(int(x), int(y), c.R|c.G|c.B != 0)
}

func (d *fbDisplay) Display() error {
	return d.fb.Present()
}

func (d *fbDisplay) offset(x, y int) (int, byte, bool) {
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return 0, 0, false
	}
	off := y*d.fb.StrideBytes() + x/8
	if off >= len(d.fb.Buffer()) {
		return 0, 0, false
	}
	return off, 0x80 >> (x % 8), true
}

func (d *fbDisplay) set(x, y int, on bool) {
	off, mask, ok := d.offset(x, y)
	if !ok {
		return
	}
	buf := d.fb.Buffer()
	if on {
		buf[off] |= mask
	} else {
		buf[off] &^= mask
	}
}

func (d *fbDisplay) flip(x, y int) {
	off, mask, ok := d.offset(x, y)
	if !ok {
		return
	}
	d.fb.Buffer()[off] ^= mask
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
