package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config controls how values are validated and rounded.
type Config struct {
	// Strict rejects clock and tuple fields above 23 hours, 59 minutes or
	// 59 seconds instead of carrying them into the next unit.
	Strict bool

	// ForceInt rounds Elapsed input to the nearest whole second. When off,
	// sub-second precision is kept by ToSeconds and ToISO8601 and truncated
	// by ToTuple.
	ForceInt bool
}

// DefaultConfig returns the default configuration: strict, whole seconds.
func DefaultConfig() Config {
	return Config{
		Strict:   true,
		ForceInt: true,
	}
}

// Converter renders Values according to a Config.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	cfg Config
}

// NewConverter creates a converter with the given configuration.
func NewConverter(cfg Config) *Converter {
	return &Converter{cfg: cfg}
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// Span is an exact non-negative total: whole seconds plus a sub-second
// remainder in nanoseconds. Nanos is zero unless the input was an Elapsed
// value converted with ForceInt off.
type Span struct {
	Whole int64
	Nanos int64
}

// IsWhole reports whether s has no sub-second remainder.
func (s Span) IsWhole() bool {
	return s.Nanos == 0
}

// Float64 returns s as a float. Totals above 2^53 seconds lose precision;
// use Whole and Nanos when exactness matters.
func (s Span) Float64() float64 {
	return float64(s.Whole) + float64(s.Nanos)/float64(time.Second)
}

// String returns s in decimal seconds without trailing zeros, e.g. "5025"
// or "1.5".
func (s Span) String() string {
	whole := strconv.FormatInt(s.Whole, 10)
	if s.Nanos == 0 {
		return whole
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", s.Nanos), "0")
	return whole + "." + frac
}

// triple parses or validates Text and Tuple input and rejects an all-zero
// result.
func (c *Converter) triple(v Value) (Triple, error) {
	var (
		t     Triple
		err   error
		input string
	)
	switch x := v.(type) {
	case Text:
		input = string(x)
		t, err = Parse(input, c.cfg.Strict)
	case Tuple:
		input = fmt.Sprint([]int64(x))
		t, err = Validate(x, c.cfg.Strict)
	default:
		return Triple{}, unsupported(v)
	}
	if err != nil {
		return Triple{}, err
	}
	if t.IsZero() {
		return Triple{}, &Error{Kind: KindEmpty, Input: input}
	}
	return t, nil
}

func (c *Converter) elapsed(d time.Duration) (Span, error) {
	if d < 0 {
		return Span{}, &Error{Kind: KindNegative, Input: d.String()}
	}
	if c.cfg.ForceInt {
		d = d.Round(time.Second)
	}
	return Span{Whole: int64(d / time.Second), Nanos: int64(d % time.Second)}, nil
}

func (c *Converter) span(v Value) (Span, error) {
	switch x := v.(type) {
	case Seconds:
		if x < 0 {
			return Span{}, &Error{Kind: KindNegative, Input: fmt.Sprint(int64(x))}
		}
		return Span{Whole: int64(x)}, nil
	case Elapsed:
		return c.elapsed(time.Duration(x))
	case Text, Tuple:
		t, err := c.triple(x)
		if err != nil {
			return Span{}, err
		}
		total, err := t.Total()
		if err != nil {
			return Span{}, err
		}
		return Span{Whole: total}, nil
	default:
		return Span{}, unsupported(v)
	}
}

// ToSeconds returns the exact total number of seconds v represents. Seconds
// input is returned unchanged; Elapsed input keeps its sub-second remainder
// unless ForceInt is set.
func (c *Converter) ToSeconds(v Value) (Span, error) {
	return c.span(v)
}

// ToTuple returns the carry-normalized triple for v.
func (c *Converter) ToTuple(v Value) (Triple, error) {
	s, err := c.span(v)
	if err != nil {
		return Triple{}, err
	}
	return FromSeconds(s.Whole), nil
}

// ToElapsed returns v as a time.Duration. Elapsed input passes through
// unchanged; ForceInt does not apply.
func (c *Converter) ToElapsed(v Value) (time.Duration, error) {
	switch x := v.(type) {
	case Elapsed:
		if x < 0 {
			return 0, &Error{Kind: KindNegative, Input: time.Duration(x).String()}
		}
		return time.Duration(x), nil
	case Seconds:
		if x < 0 {
			return 0, &Error{Kind: KindNegative, Input: fmt.Sprint(int64(x))}
		}
		return secondsToElapsed(int64(x), fmt.Sprint(int64(x)))
	case Text, Tuple:
		t, err := c.triple(x)
		if err != nil {
			return 0, err
		}
		return t.Elapsed()
	default:
		return 0, unsupported(v)
	}
}

// ToISO8601 renders v as an ISO 8601 duration such as "P1DT00H59M21S".
func (c *Converter) ToISO8601(v Value) (string, error) {
	s, err := c.span(v)
	if err != nil {
		return "", err
	}
	return FormatISO8601(s.Whole, s.Nanos, c.cfg.ForceInt), nil
}

var std = NewConverter(DefaultConfig())

// ToSeconds converts v using DefaultConfig.
func ToSeconds(v Value) (Span, error) {
	return std.ToSeconds(v)
}

// ToTuple converts v using DefaultConfig.
func ToTuple(v Value) (Triple, error) {
	return std.ToTuple(v)
}

// ToElapsed converts v using DefaultConfig.
func ToElapsed(v Value) (time.Duration, error) {
	return std.ToElapsed(v)
}

// ToISO8601 converts v using DefaultConfig.
func ToISO8601(v Value) (string, error) {
	return std.ToISO8601(v)
}
