package hal

import "image"

// monoFramebuffer is a 1bpp framebuffer. present, if set, pushes the buffer to a panel.
type monoFramebuffer struct {
	width   int
	height  int
	stride  int
	buf     []byte
	present func(buf []byte) error
}

// NewMonoFramebuffer returns an in-memory framebuffer whose Present is a no-op.
func NewMonoFramebuffer(width, height int) Framebuffer {
	return newMonoFramebuffer(width, height, nil)
}

func newMonoFramebuffer(width, height int, present func([]byte) error) *monoFramebuffer {
	stride := (width + 7) / 8
	return &monoFramebuffer{
		width:   width,
		height:  height,
		stride:  stride,
		buf:     make([]byte, stride*height),
		present: present,
	}
}

func (f *monoFramebuffer) Width() int          { return f.width }
func (f *monoFramebuffer) Height() int         { return f.height }
func (f *monoFramebuffer) Format() PixelFormat { return PixelFormatMono }
func (f *monoFramebuffer) StrideBytes() int    { return f.stride }
func (f *monoFramebuffer) Buffer() []byte      { return f.buf }

func (f *monoFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *monoFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf)
}

// MonoPixel reports whether pixel (x, y) of a PixelFormatMono framebuffer is lit.
func MonoPixel(fb Framebuffer, x, y int) bool {
	if fb == nil || fb.Format() != PixelFormatMono {
		return false
	}
	if x < 0 || x >= fb.Width() || y < 0 || y >= fb.Height() {
		return false
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x/8
	if off >= len(buf) {
		return false
	}
	return buf[off]&(0x80>>(x%8)) != 0
}

// MonoImage converts a mono framebuffer to a grayscale image (lit pixels are white).
func MonoImage(fb Framebuffer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if MonoPixel(fb, x, y) {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}
