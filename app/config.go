package app

import (
	"strconv"
	"strings"

	"hemisphere/applet"

	"github.com/pkg/errors"
)

// ParseCV parses up to four comma separated input levels, e.g. "0,3840,-1920".
// Missing trailing channels are zero.
func ParseCV(s string) ([applet.PhysicalChannels]int, error) {
	var cv [applet.PhysicalChannels]int
	s = strings.TrimSpace(s)
	if s == "" {
		return cv, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) > len(cv) {
		return cv, errors.Errorf("cv %q: %d values, at most %d", s, len(fields), len(cv))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return cv, errors.Wrapf(err, "cv %q: channel %d", s, i+1)
		}
		if v > applet.MaxCV || v < -applet.MaxCV {
			return cv, errors.Errorf("cv %q: channel %d out of range ±%d", s, i+1, applet.MaxCV)
		}
		cv[i] = v
	}
	return cv, nil
}
