//go:build !tinygo

package hal

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalPreview draws the framebuffer on a terminal with half-block characters and feeds
// key presses back as keyboard events and trigger pulses.
type terminalPreview struct {
	out   io.Writer
	fd    int
	isTTY bool
	every int
	frame int

	oldState *term.State
	pulses   chan int
}

func newTerminalPreview(f *os.File, every int) *terminalPreview {
	if every <= 0 {
		every = 1
	}
	fd := int(f.Fd())
	return &terminalPreview{
		out:    f,
		fd:     fd,
		isTTY:  term.IsTerminal(fd),
		every:  every,
		pulses: make(chan int, 16),
	}
}

// startInput puts stdin in raw mode and forwards keys until ctx ends.
// Digits 1-4 pulse the trigger inputs; Ctrl-C calls cancel.
func (p *terminalPreview) startInput(ctx context.Context, in *os.File, kbd *hostKeyboard, cancel func()) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	p.oldState = old

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil || ctx.Err() != nil {
				return
			}
			if n == 0 {
				continue
			}
			b := buf[0]
			switch {
			case b == 0x03:
				cancel()
				return
			case b >= '1' && b <= '4':
				select {
				case p.pulses <- int(b - '1'):
				default:
				}
			case b == '\r':
				kbd.send(KeyEvent{Code: KeyEnter, Press: true})
			default:
				kbd.send(KeyEvent{Press: true, Rune: rune(b)})
			}
		}
	}()
	return nil
}

func (p *terminalPreview) restore(fd int) {
	if p.oldState != nil {
		_ = term.Restore(fd, p.oldState)
		p.oldState = nil
	}
}

// render draws every Nth frame.
func (p *terminalPreview) render(fb Framebuffer) error {
	p.frame++
	if p.frame%p.every != 0 {
		return nil
	}
	xstep := 1
	if p.isTTY {
		if cols, _, err := term.GetSize(p.fd); err == nil && cols < fb.Width() {
			xstep = 2
		}
	}
	var b strings.Builder
	if p.isTTY {
		b.WriteString("\x1b[H")
	}
	b.WriteString(halfBlocks(fb, xstep, p.isTTY))
	_, err := io.WriteString(p.out, b.String())
	return err
}

// halfBlocks renders two pixel rows per text line, xstep pixels per column.
func halfBlocks(fb Framebuffer, xstep int, raw bool) string {
	eol := "\n"
	if raw {
		eol = "\r\n"
	}
	lit := func(x, y int) bool {
		for dx := 0; dx < xstep; dx++ {
			if MonoPixel(fb, x+dx, y) {
				return true
			}
		}
		return false
	}
	var b strings.Builder
	for y := 0; y < fb.Height(); y += 2 {
		for x := 0; x < fb.Width(); x += xstep {
			top, bottom := lit(x, y), lit(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(eol)
	}
	return b.String()
}
