//go:build !tinygo

package applets

import "hemisphere/applet"

func loadScript(path string) (applet.Applet, error) {
	return LoadLua(path)
}
