//go:build tinygo

package applets

import (
	"hemisphere/applet"

	"github.com/pkg/errors"
)

func loadScript(path string) (applet.Applet, error) {
	return nil, errors.Errorf("lua applet %s: scripts are not supported on this target", path)
}
