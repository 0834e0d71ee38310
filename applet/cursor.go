package applet

// CursorTicks is half of the cursor blink period, in ticks.
const CursorTicks = 12000

// Cursor is a free-running blink timer for edit cursors.
//
// It is visible for CursorTicks ticks, hidden for CursorTicks ticks, and repeats.
type Cursor struct {
	countdown int32
}

// Tick advances the timer by one tick.
func (c *Cursor) Tick() {
	c.countdown--
	if c.countdown <= -CursorTicks {
		c.countdown = CursorTicks
	}
}

// Visible reports whether the cursor is in the "on" half of its cycle.
func (c *Cursor) Visible() bool { return c.countdown > 0 }

// Reset restarts the cycle at the beginning of the visible half.
func (c *Cursor) Reset() { c.countdown = CursorTicks }
