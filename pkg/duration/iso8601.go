package duration

import (
	"fmt"
	"strings"
	"time"
)

// FormatISO8601 renders whole seconds plus a nanosecond remainder as an ISO
// 8601 duration. The remainder is rounded to microseconds, or to whole
// seconds when forceInt is set.
func FormatISO8601(whole, nanos int64, forceInt bool) string {
	var micros int64
	if forceInt {
		if nanos >= int64(time.Second/2) {
			whole++
		}
	} else {
		micros = (nanos + 500) / 1000
		if micros >= 1_000_000 {
			whole++
			micros = 0
		}
	}

	minutes, seconds := whole/60, whole%60
	hours, minutes := minutes/60, minutes%60
	days, hours := hours/24, hours%24

	var b strings.Builder
	b.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}

	b.WriteByte('T')

	// A larger unit forces every smaller one to be shown.
	bigger := days > 0 || hours > 0
	if bigger {
		fmt.Fprintf(&b, "%02dH", hours)
	}
	bigger = bigger || minutes > 0
	if bigger {
		fmt.Fprintf(&b, "%02dM", minutes)
	}

	if micros == 0 {
		fmt.Fprintf(&b, "%02d", seconds)
	} else {
		// Same digits as %09.6f, minus trailing zeros.
		frac := strings.TrimRight(fmt.Sprintf("%06d", micros), "0")
		fmt.Fprintf(&b, "%02d.%s", seconds, frac)
	}
	b.WriteByte('S')

	return b.String()
}

// ISO8601 renders a non-negative time.Duration as an ISO 8601 duration.
func ISO8601(d time.Duration, forceInt bool) (string, error) {
	return NewConverter(Config{Strict: true, ForceInt: forceInt}).ToISO8601(Elapsed(d))
}
