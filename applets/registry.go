// Package applets holds the applets that can be loaded onto a hemisphere.
package applets

import (
	"sort"
	"strings"

	"hemisphere/applet"

	"github.com/pkg/errors"
)

// ErrUnknown is returned by New for a name that is not registered.
var ErrUnknown = errors.New("unknown applet")

var builtin = map[string]func() applet.Applet{
	"clockdiv": func() applet.Applet { return NewClockDivider() },
	"attenoff": func() applet.Applet { return NewAttenuateOffset() },
}

// New returns a fresh, unbound applet. name is a registered name or, on the host,
// "lua=<path>" for a script.
func New(name string) (applet.Applet, error) {
	if path, ok := strings.CutPrefix(name, "lua="); ok {
		return loadScript(path)
	}
	mk, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknown, "%q (have %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// Names lists the registered applet names in order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
