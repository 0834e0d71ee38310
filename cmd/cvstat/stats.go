package main

// recording holds interleaved samples in DAC units.
type recording struct {
	channels int
	rate     int
	data     []int
}

type channelStats struct {
	min, max, mean int
	pulses         int
}

func (r *recording) frames() int { return len(r.data) / r.channels }

// stats summarises channel ch. A pulse is a rise from below threshold to at or above it.
func (r *recording) stats(ch, threshold int) channelStats {
	var s channelStats
	n := r.frames()
	if n == 0 {
		return s
	}
	sum := 0
	high := false
	for i := 0; i < n; i++ {
		v := r.data[i*r.channels+ch]
		if i == 0 || v < s.min {
			s.min = v
		}
		if i == 0 || v > s.max {
			s.max = v
		}
		sum += v
		if v >= threshold {
			if !high {
				s.pulses++
			}
			high = true
		} else {
			high = false
		}
	}
	s.mean = sum / n
	return s
}
