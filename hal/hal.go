package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono is 1bpp, row-major, most significant bit leftmost.
	PixelFormatMono PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Clear()
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// Each value is a monotonically increasing tick sequence number. Consumers that fall behind
// may miss values and should catch up from the difference.
type Time interface {
	Ticks() <-chan uint64
}

// OctaveUnits is the DAC value span of one octave (12 semitones of 128 steps).
const OctaveUnits = 12 * 128

// ADC samples the analog CV inputs.
type ADC interface {
	Channels() int
	Sample(ch int) int
}

// DAC drives the analog CV outputs.
type DAC interface {
	Channels() int
	Write(ch, value, octave int)
	// Level returns the last written value plus its octave offset in DAC units.
	Level(ch int) int
}

// Digital reports the state of the trigger/gate inputs.
type Digital interface {
	Lines() int
	// Clocked reports a rising edge since the previous call for line.
	Clocked(line int) bool
	Gated(line int) bool
}

// HAL provides the only contact point between the runtime and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	ADC() ADC
	DAC() DAC
	Digital() Digital
}
