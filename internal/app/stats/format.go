package stats

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as H:MM:SS. Hours are not padded and are
// always present; a fractional part is printed as six-digit microseconds.
func FormatDuration(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	micros := int64(math.Round(seconds * 1e6))
	whole := micros / 1e6
	frac := micros % 1e6

	h := whole / 3600
	m := whole % 3600 / 60
	s := whole % 60

	out := fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	if frac != 0 {
		out += fmt.Sprintf(".%06d", frac)
	}
	return out
}

// FormatSeconds renders whole seconds as H:MM:SS.
func FormatSeconds(seconds int) string {
	return FormatDuration(float64(seconds))
}
