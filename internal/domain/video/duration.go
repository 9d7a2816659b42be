// Package video provides the Video duration domain entity and the parser for
// the compact duration strings returned by the YouTube Data API.
package video

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrParse is returned when a duration string does not match PT#H#M#S.
var ErrParse = errors.New("invalid duration string")

// durationPattern matches ISO 8601 durations as emitted by YouTube, e.g.
// "PT4M13S", "PT1H", "P1DT2H3M". Weeks, months and years never occur.
var durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// Duration pairs a video with its raw duration string and the derived
// number of seconds.
type Duration struct {
	VideoID string // YouTube video ID
	Raw     string // Duration as returned by the API (e.g. "PT4M13S")
	Seconds int    // Total seconds
}

// NewDuration parses raw and returns the Duration for the given video.
func NewDuration(videoID, raw string) (Duration, error) {
	secs, err := ParseDuration(raw)
	if err != nil {
		return Duration{}, errors.Wrapf(err, "video %s", videoID)
	}
	return Duration{VideoID: videoID, Raw: raw, Seconds: secs}, nil
}

// ParseDuration converts a duration string into total seconds.
// Omitted components count as zero, but at least one must be present.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Mark(errors.Newf("invalid duration string %q", s), ErrParse)
	}

	multipliers := [...]int{86400, 3600, 60, 1}
	total := 0
	found := false
	for i, mult := range multipliers {
		part := m[i+1]
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, errors.Mark(errors.Wrapf(err, "invalid duration component in %q", s), ErrParse)
		}
		total += n * mult
		found = true
	}
	if !found {
		return 0, errors.Mark(errors.Newf("duration string %q has no components", s), ErrParse)
	}

	return total, nil
}

// ParseDurations converts every string in order. The first invalid string
// aborts the whole batch.
func ParseDurations(raw []string) ([]int, error) {
	secs := make([]int, len(raw))
	for i, s := range raw {
		n, err := ParseDuration(s)
		if err != nil {
			return nil, err
		}
		secs[i] = n
	}
	return secs, nil
}
