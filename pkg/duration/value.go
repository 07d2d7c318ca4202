package duration

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Value is one of the accepted input shapes: Text, Seconds, Elapsed or Tuple.
type Value interface {
	isValue()
}

// Text is a clock string such as "1:23:45" or "3:47".
type Text string

// Seconds is a total number of whole seconds.
type Seconds int64

// Elapsed is a time span that may carry sub-second precision.
type Elapsed time.Duration

// Tuple is an (hours, minutes, seconds) sequence. It must have exactly
// three elements.
type Tuple []int64

func (Text) isValue()    {}
func (Seconds) isValue() {}
func (Elapsed) isValue() {}
func (Tuple) isValue()   {}

// FromAny maps a dynamically typed value, typically one produced by a config
// or wire decoder, onto a Value.
//
// Strings become Text, integers become Seconds, time.Duration becomes
// Elapsed and integer sequences become Tuple. Integral floats (as produced
// by encoding/json) are Seconds; fractional floats are Elapsed. A json.Number
// is read as an exact integer when it has no fraction.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(x), nil
	case time.Duration:
		return Elapsed(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return Seconds(n), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, &Error{Kind: KindFormat, Input: string(x)}
		}
		return fromFloat(f)
	case []int:
		t := make(Tuple, len(x))
		for i, n := range x {
			t[i] = int64(n)
		}
		return t, nil
	case []int64:
		return Tuple(x), nil
	case []any:
		t := make(Tuple, len(x))
		for i, item := range x {
			n, ok, err := toInt64(item)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, unsupported(item)
			}
			t[i] = n
		}
		return t, nil
	}

	n, ok, err := toInt64(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, unsupported(v)
	}
	return Seconds(n), nil
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &Error{Kind: KindOverflow, Input: fmt.Sprint(f)}
	}
	if f == math.Trunc(f) {
		if math.Abs(f) >= math.MaxInt64 {
			return nil, &Error{Kind: KindOverflow, Input: fmt.Sprint(f)}
		}
		return Seconds(int64(f)), nil
	}
	if math.Abs(f) >= float64(math.MaxInt64)/float64(time.Second) {
		return nil, &Error{Kind: KindOverflow, Input: fmt.Sprint(f)}
	}
	return Elapsed(time.Duration(f * float64(time.Second))), nil
}

// toInt64 reports ok=false when v is not an integer type.
func toInt64(v any) (n int64, ok bool, err error) {
	switch x := v.(type) {
	case int:
		return int64(x), true, nil
	case int8:
		return int64(x), true, nil
	case int16:
		return int64(x), true, nil
	case int32:
		return int64(x), true, nil
	case int64:
		return x, true, nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x), true, nil
	case uint16:
		return int64(x), true, nil
	case uint32:
		return int64(x), true, nil
	case uint64:
		return fromUint(x)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < math.MaxInt64 {
			return int64(x), true, nil
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true, nil
		}
	}
	return 0, false, nil
}

func fromUint(u uint64) (int64, bool, error) {
	if u > math.MaxInt64 {
		return 0, true, &Error{Kind: KindOverflow, Input: fmt.Sprint(u)}
	}
	return int64(u), true, nil
}

func unsupported(v any) *Error {
	return &Error{Kind: KindUnsupportedType, Input: fmt.Sprintf("%T", v)}
}
