package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const panicLineHeight = 9

// fault logs a recovered applet panic with its stack and replaces the display with it.
func (a *App) fault(v any, stack []byte) {
	a.logf("hemisphere: panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		a.logf("%s", line)
	}

	s := a.screen
	s.Clear()
	cols := max(1, s.Width()/max(1, s.TextWidth("M")))
	y := 0
	for _, line := range []string{"Panic", fmt.Sprint(v)} {
		for len(line) > 0 {
			if y+panicLineHeight > s.Height() {
				_ = s.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.SetPrintPos(0, y)
			s.Print(chunk)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.Display()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
