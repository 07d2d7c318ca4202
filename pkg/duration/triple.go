package duration

import (
	"fmt"
	"math"
	"time"
)

// Triple is an (hours, minutes, seconds) duration. It is canonical when
// minutes and seconds are both below 60; hours are unbounded.
type Triple struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// FromSeconds decomposes a non-negative second count into a canonical Triple.
func FromSeconds(total int64) Triple {
	minutes, seconds := total/60, total%60
	hours, minutes := minutes/60, minutes%60
	return Triple{Hours: hours, Minutes: minutes, Seconds: seconds}
}

// Normalize carries seconds into minutes and minutes into hours through the
// total. It fails with KindOverflow when the total does not fit in int64.
func (t Triple) Normalize() (Triple, error) {
	total, err := t.Total()
	if err != nil {
		return Triple{}, err
	}
	return FromSeconds(total), nil
}

// Total returns hours*3600 + minutes*60 + seconds.
func (t Triple) Total() (int64, error) {
	const max = math.MaxInt64
	if t.Hours > max/3600 {
		return 0, t.overflow()
	}
	total := t.Hours * 3600
	if t.Minutes > (max-total)/60 {
		return 0, t.overflow()
	}
	total += t.Minutes * 60
	if t.Seconds > max-total {
		return 0, t.overflow()
	}
	return total + t.Seconds, nil
}

// Elapsed returns the triple as a time.Duration.
func (t Triple) Elapsed() (time.Duration, error) {
	total, err := t.Total()
	if err != nil {
		return 0, err
	}
	return secondsToElapsed(total, t.String())
}

// IsZero reports whether all three fields are zero.
func (t Triple) IsZero() bool {
	return t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// Tuple returns the triple as a Tuple value.
func (t Triple) Tuple() Tuple {
	return Tuple{t.Hours, t.Minutes, t.Seconds}
}

// String returns the triple in clock notation, "H:MM:SS".
func (t Triple) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

func (t Triple) overflow() *Error {
	return &Error{Kind: KindOverflow, Input: t.String()}
}

const maxElapsedSeconds = int64(math.MaxInt64 / time.Second)

func secondsToElapsed(total int64, input string) (time.Duration, error) {
	if total > maxElapsedSeconds {
		return 0, &Error{Kind: KindOverflow, Input: input}
	}
	return time.Duration(total) * time.Second, nil
}
