//go:build !tinygo

package hal

import (
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// recordScale converts DAC units to 16-bit samples; 8192 DAC units is full scale.
const recordScale = 4

// MaxRecordDuration bounds a recording. At the default tick rate it buffers about 40 MB.
const MaxRecordDuration = 5 * time.Minute

// writeChunk is the number of frames handed to the WAV encoder at a time.
const writeChunk = 4096

// Recorder captures every DAC channel once per tick, for writing out as a WAV file with one
// audio channel per CV output at the tick rate. Samples are buffered in memory, up to
// MaxRecordDuration; later captures are discarded.
type Recorder struct {
	dac       DAC
	rate      int
	limit     int
	data      []int16
	truncated bool
}

// NewRecorder records dac, sampled every tickPeriod.
func NewRecorder(dac DAC, tickPeriod time.Duration) *Recorder {
	if tickPeriod <= 0 {
		tickPeriod = DefaultTickPeriod
	}
	return &Recorder{
		dac:   dac,
		rate:  int(time.Second / tickPeriod),
		limit: int(MaxRecordDuration / tickPeriod),
	}
}

// Capture appends one frame holding the current level of every channel.
func (r *Recorder) Capture() {
	if r.Frames() >= r.limit {
		r.truncated = true
		return
	}
	for ch := 0; ch < r.dac.Channels(); ch++ {
		v := r.dac.Level(ch) * recordScale
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		r.data = append(r.data, int16(v))
	}
}

// Frames returns the number of captured frames.
func (r *Recorder) Frames() int {
	if n := r.dac.Channels(); n > 0 {
		return len(r.data) / n
	}
	return 0
}

// Truncated reports whether captures were discarded because the recording was full.
func (r *Recorder) Truncated() bool { return r.truncated }

// SampleRate returns the recording's sample rate in Hz.
func (r *Recorder) SampleRate() int { return r.rate }

// Write encodes the captured frames as 16-bit PCM.
func (r *Recorder) Write(w io.WriteSeeker) error {
	channels := r.dac.Channels()
	enc := wav.NewEncoder(w, r.rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: r.rate},
		Data:           make([]int, 0, writeChunk*channels),
		SourceBitDepth: 16,
	}
	// An empty recording still goes through Write once so the header is emitted.
	for off := 0; off == 0 || off < len(r.data); off += writeChunk * channels {
		end := min(off+writeChunk*channels, len(r.data))
		buf.Data = buf.Data[:0]
		for _, v := range r.data[off:end] {
			buf.Data = append(buf.Data, int(v))
		}
		if err := enc.Write(buf); err != nil {
			return errors.Wrap(err, "record: encode")
		}
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "record: finish")
	}
	return nil
}

// WriteFile writes the recording to path.
func (r *Recorder) WriteFile(path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "record")
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "record")
		}
	}()
	return r.Write(f)
}
