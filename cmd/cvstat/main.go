// Command cvstat summarises a CV recording made with -record: the range and mean of each
// output and the number of pulses on it.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

func main() {
	var (
		inPath    = flag.String("in", "", "Recorded WAV file.")
		scale     = flag.Int("scale", 4, "Sample units per DAC unit.")
		threshold = flag.Int("threshold", 3840, "Pulse threshold in DAC units.")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: cvstat -in out.wav [-threshold 3840] [-scale 4]")
	}
	if *scale <= 0 {
		fatalf("scale out of range: %d", *scale)
	}
	rec, err := load(*inPath, *scale)
	if err != nil {
		fatalf("%v", err)
	}

	dur := time.Duration(rec.frames()) * time.Second / time.Duration(rec.rate)
	fmt.Printf("%s: %d channels, %d Hz, %d frames (%v)\n", *inPath, rec.channels, rec.rate, rec.frames(), dur)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ch\tmin\tmax\tmean\tpulses")
	for ch := 0; ch < rec.channels; ch++ {
		s := rec.stats(ch, *threshold)
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", ch+1, s.min, s.max, s.mean, s.pulses)
	}
	_ = w.Flush()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func load(path string, scale int) (*recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, errors.Errorf("%s: not a WAV file", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, errors.Errorf("%s: missing format", path)
	}
	if d.BitDepth != 16 {
		return nil, errors.Errorf("%s: only 16-bit PCM is supported (got %d)", path, d.BitDepth)
	}
	data := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = v / scale
	}
	return &recording{channels: buf.Format.NumChannels, rate: buf.Format.SampleRate, data: data}, nil
}
