//go:build !tinygo

package hal

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// WriteScreenshot saves the framebuffer to path as a BMP image.
func WriteScreenshot(fb Framebuffer, path string) (rerr error) {
	if fb == nil || fb.Format() != PixelFormatMono {
		return errors.Wrap(ErrNotImplemented, "screenshot: unsupported framebuffer")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "screenshot")
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "screenshot")
		}
	}()
	if err := bmp.Encode(f, MonoImage(fb)); err != nil {
		return errors.Wrapf(err, "screenshot: encode %s", path)
	}
	return nil
}
