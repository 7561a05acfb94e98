package units

import (
	"fmt"
	"math"
)

// SplitSexagesimal decomposes value into a sign (-1, 0 or +1), whole
// units, minutes and seconds, with no rounding applied.
//
// Not suitable for display: a value must be rounded at the smallest
// displayed digit first, or 59.9999 seconds will fail to carry into the
// next minute. Use RoundSexagesimal for anything shown to a user.
func SplitSexagesimal(value float64) (sign, whole, minutes, seconds float64) {
	switch {
	case value > 0:
		sign = 1
	case value < 0:
		sign = -1
	}
	n := math.Abs(value) * 3600.0
	minutes = math.Floor(n / 60.0)
	seconds = n - minutes*60.0
	whole = math.Floor(minutes / 60.0)
	minutes -= whole * 60.0
	return sign, whole, minutes, seconds
}

// RoundSexagesimal decomposes value for display, with the seconds
// fraction expressed as an integer of `places` digits.
//
// The total count of the smallest unit is computed in the integer domain
// with half-up rounding, then split by successive division, so carries
// propagate correctly: with places=1, 59.99996 seconds becomes the next
// whole minute rather than `60.0"`. The result is properly rounded per
// astronomical convention: (1, 11, 22, 33, 4) for places=1 means the
// input was closer to 11u 22' 33.4" than to 33.3" or 33.5".
func RoundSexagesimal(value float64, places int) (sign, whole, minutes, seconds, fraction int64) {
	power := int64(1)
	for i := 0; i < places; i++ {
		power *= 10
	}
	n := int64(math.Floor(float64(power)*3600.0*value + 0.5))
	switch {
	case n > 0:
		sign = 1
	case n < 0:
		sign = -1
		n = -n
	}
	n, fraction = n/power, n%power
	n, seconds = n/60, n%60
	whole, minutes = n/60, n%60
	return sign, whole, minutes, seconds, fraction
}

// JoinSexagesimal returns a value expressed with 1/60 minutes and 1/3600
// seconds. Only the sign of whole is significant: its sign is applied to
// the minutes and seconds components, so (-1, 2, 3), (-1, -2, 3) and
// (-1, -2, -3) all produce the same value.
func JoinSexagesimal(whole, minutes, seconds float64) float64 {
	return whole +
		math.Copysign(minutes, whole)/60.0 +
		math.Copysign(seconds, whole)/3600.0
}

// formatDegrees renders a value already expressed in degrees as
// `181deg 52' 30.0"`, with `places` fractional second digits. A signed
// angle carries an explicit leading "+".
func formatDegrees(value float64, places int, signed bool) string {
	if math.IsNaN(value) {
		return "nan"
	}
	sgn, d, m, s, frac := RoundSexagesimal(value, places)
	sign := ""
	switch {
	case sgn < 0:
		sign = "-"
	case signed:
		sign = "+"
	}
	return fmt.Sprintf("%s%02ddeg %02d' %02d.%0*d\"", sign, d, m, s, places, frac)
}

// formatHours renders a value already expressed in hours as
// `12h 07m 30.00s`, with `places` fractional second digits.
func formatHours(value float64, places int) string {
	if math.IsNaN(value) {
		return "nan"
	}
	sgn, h, m, s, frac := RoundSexagesimal(value, places)
	sign := ""
	if sgn < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%02dh %02dm %02d.%0*ds", sign, h, m, s, places, frac)
}
