//go:build !tinygo

package hal

import "time"

type hostTime struct {
	ch  chan uint64
	seq uint64

	period time.Duration
	last   time.Time
	acc    time.Duration
}

func newHostTime(period time.Duration) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), period: period}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits as many ticks as wall-clock time allows since the previous call.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / t.period)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % t.period
	t.stepN(ticks)
}

// stepN emits n ticks. Only the newest sequence number matters to a lagging reader, so a
// full channel drops its oldest value to make room.
func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		t.send(t.seq)
	}
}

func (t *hostTime) send(seq uint64) {
	for {
		select {
		case t.ch <- seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
