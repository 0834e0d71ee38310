//go:build !tinygo

package applets

import (
	"os"

	"hemisphere/applet"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Lua is an applet written in Lua.
//
// The script sets the globals name (string) and help (table of four strings) and may define
// start(), controller(), view(), button() and encoder(direction). These globals call into
// the applet, with 0-based channels: In, Out, Clock, Gate, ClockOut, Proportion,
// CursorBlink, ResetCursor, gfxPrint (any value, so numbers too), gfxPrintMore, gfxPixel,
// gfxLine, gfxRect, gfxFrame, gfxInvert, gfxCircle, gfxCursor, gfxHeader, gfxButterfly,
// gfxButterflyChannel, gfxOutputBar, gfxInputBar.
//
// A runtime error in the script stops it; the error is shown in place of its view.
type Lua struct {
	applet.Base

	L    *lua.LState
	name string
	help applet.Help
	err  error
}

// LoadLua reads a Lua applet from path.
func LoadLua(path string) (*Lua, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "lua")
	}
	a, err := NewLua(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "lua: %s", path)
	}
	return a, nil
}

// NewLua compiles and runs the top level of src.
func NewLua(src string) (*Lua, error) {
	a := &Lua{L: lua.NewState(lua.Options{SkipOpenLibs: true})}
	if err := a.openLibs(); err != nil {
		a.L.Close()
		return nil, err
	}
	a.register()
	if err := a.L.DoString(src); err != nil {
		a.L.Close()
		return nil, errors.Wrap(err, "load script")
	}

	name, ok := a.L.GetGlobal("name").(lua.LString)
	if !ok || name == "" {
		a.L.Close()
		return nil, errors.New("script does not set name")
	}
	if len(name) > applet.MaxNameLen {
		a.L.Close()
		return nil, errors.Errorf("name %q longer than %d characters", string(name), applet.MaxNameLen)
	}
	a.name = string(name)

	if tbl, ok := a.L.GetGlobal("help").(*lua.LTable); ok {
		for i := range a.help {
			if s, ok := tbl.RawGetInt(i + 1).(lua.LString); ok {
				a.help[i] = string(s)
			}
		}
	}
	return a, nil
}

func (a *Lua) openLibs() error {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := a.L.CallByParam(lua.P{Fn: a.L.NewFunction(lib.fn), NRet: 0, Protect: true}, lua.LString(lib.name)); err != nil {
			return errors.Wrapf(err, "open %s", lib.name)
		}
	}
	// Scripts get no file access.
	for _, name := range []string{"dofile", "loadfile"} {
		a.L.SetGlobal(name, lua.LNil)
	}
	return nil
}

// Err returns the error that stopped the script, if any.
func (a *Lua) Err() error { return a.err }

// Close releases the interpreter.
func (a *Lua) Close() error {
	a.L.Close()
	return nil
}

func (a *Lua) Name() string      { return a.name }
func (a *Lua) Help() applet.Help { return a.help }

func (a *Lua) Start()      { a.call("start") }
func (a *Lua) Controller() { a.call("controller") }

func (a *Lua) View() {
	if a.err != nil {
		a.GfxHeader(a.name)
		a.GfxPrint(1, 15, "Script")
		a.GfxPrint(1, 25, "error")
		return
	}
	a.call("view")
}

func (a *Lua) OnButtonPress() { a.call("button") }

func (a *Lua) OnEncoderMove(direction int) {
	a.call("encoder", lua.LNumber(direction))
}

func (a *Lua) call(fn string, args ...lua.LValue) {
	if a.err != nil {
		return
	}
	f, ok := a.L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		return
	}
	if err := a.L.CallByParam(lua.P{Fn: f, NRet: 0, Protect: true}, args...); err != nil {
		a.err = errors.Wrapf(err, "lua: %s()", fn)
	}
}

func (a *Lua) register() {
	fns := map[string]lua.LGFunction{
		"In": func(L *lua.LState) int {
			L.Push(lua.LNumber(a.In(checkChannel(L, 1))))
			return 1
		},
		"Out": func(L *lua.LState) int {
			a.OutOctave(checkChannel(L, 1), L.CheckInt(2), L.OptInt(3, 0))
			return 0
		},
		"Clock": func(L *lua.LState) int {
			L.Push(lua.LBool(a.Clock(checkChannel(L, 1))))
			return 1
		},
		"Gate": func(L *lua.LState) int {
			L.Push(lua.LBool(a.Gate(checkChannel(L, 1))))
			return 1
		},
		"ClockOut": func(L *lua.LState) int {
			a.ClockOutTicks(checkChannel(L, 1), L.OptInt(2, applet.ClockTicks))
			return 0
		},
		"Proportion": func(L *lua.LState) int {
			d := L.CheckInt(2)
			if d == 0 {
				L.ArgError(2, "zero denominator")
				return 0
			}
			L.Push(lua.LNumber(applet.Proportion(L.CheckInt(1), d, L.CheckInt(3))))
			return 1
		},
		"CursorBlink": func(L *lua.LState) int {
			L.Push(lua.LBool(a.CursorBlink()))
			return 1
		},
		"ResetCursor": func(L *lua.LState) int {
			a.ResetCursor()
			return 0
		},
		"gfxPrint": func(L *lua.LState) int {
			a.GfxPrint(L.CheckInt(1), L.CheckInt(2), L.ToStringMeta(L.CheckAny(3)).String())
			return 0
		},
		"gfxPrintMore": func(L *lua.LState) int {
			a.GfxPrintMore(L.ToStringMeta(L.CheckAny(1)).String())
			return 0
		},
		"gfxPixel": func(L *lua.LState) int {
			a.GfxPixel(L.CheckInt(1), L.CheckInt(2))
			return 0
		},
		"gfxLine": func(L *lua.LState) int {
			a.GfxLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
			return 0
		},
		"gfxRect": func(L *lua.LState) int {
			a.GfxRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
			return 0
		},
		"gfxFrame": func(L *lua.LState) int {
			a.GfxFrame(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
			return 0
		},
		"gfxInvert": func(L *lua.LState) int {
			a.GfxInvert(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
			return 0
		},
		"gfxCircle": func(L *lua.LState) int {
			a.GfxCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
			return 0
		},
		"gfxCursor": func(L *lua.LState) int {
			a.GfxCursor(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
			return 0
		},
		"gfxHeader": func(L *lua.LState) int {
			a.GfxHeader(L.OptString(1, a.name))
			return 0
		},
		"gfxButterfly": func(L *lua.LState) int {
			a.GfxButterfly(L.OptBool(1, false))
			return 0
		},
		"gfxButterflyChannel": func(L *lua.LState) int {
			a.GfxButterflyChannel(L.OptBool(1, false))
			return 0
		},
		"gfxOutputBar": func(L *lua.LState) int {
			a.GfxOutputBar(checkChannel(L, 1), L.CheckInt(2), L.OptBool(3, false))
			return 0
		},
		"gfxInputBar": func(L *lua.LState) int {
			a.GfxInputBar(checkChannel(L, 1), L.CheckInt(2), L.OptBool(3, false))
			return 0
		},
	}
	for name, fn := range fns {
		a.L.SetGlobal(name, a.L.NewFunction(fn))
	}
}

// checkChannel validates a logical channel argument; scripts are not trusted to pass 0 or 1.
func checkChannel(L *lua.LState, n int) int {
	ch := L.CheckInt(n)
	if ch < 0 || ch >= applet.Channels {
		L.ArgError(n, "channel must be 0 or 1")
	}
	return ch
}
