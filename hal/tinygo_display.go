//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/sh1106"
)

var oledOn = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
var oledOff = color.RGBA{A: 0xff}

// newOLEDFramebuffer returns a 128x64 framebuffer presented on an SH1106 OLED.
func newOLEDFramebuffer(bus *machine.SPI, dc, reset, cs machine.Pin) (*monoFramebuffer, error) {
	dev := sh1106.NewSPI(bus, dc, reset, cs)
	dev.Configure(sh1106.Config{Width: 128, Height: 64})
	dev.ClearDisplay()

	var fb *monoFramebuffer
	fb = newMonoFramebuffer(128, 64, func(buf []byte) error {
		for y := 0; y < fb.height; y++ {
			for x := 0; x < fb.width; x++ {
				c := oledOff
				if buf[y*fb.stride+x/8]&(0x80>>(x%8)) != 0 {
					c = oledOn
				}
				dev.SetPixel(int16(x), int16(y), c)
			}
		}
		return dev.Display()
	})
	return fb, nil
}
