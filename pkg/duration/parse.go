package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches an optional "HOURS:" group followed by
// "MINUTES:SECONDS" at the start of the text. Trailing text is ignored.
var clockPattern = regexp.MustCompile(`^(?:(\d+):)?(\d+):(\d+)`)

// Parse extracts hours, minutes and seconds from a clock string and checks
// them against strict mode. Missing hours default to zero. Parse does not
// reject an all-zero result; the converters do.
func Parse(s string, strict bool) (Triple, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		if err := checkNegativeText(s); err != nil {
			return Triple{}, err
		}
		return Triple{}, &Error{Kind: KindFormat, Input: s}
	}

	var (
		t   Triple
		err error
	)
	if t.Hours, err = parseField(m[1], FieldHours, s); err != nil {
		return Triple{}, err
	}
	if t.Minutes, err = parseField(m[2], FieldMinutes, s); err != nil {
		return Triple{}, err
	}
	if t.Seconds, err = parseField(m[3], FieldSeconds, s); err != nil {
		return Triple{}, err
	}

	return checkStrict(t, strict, s)
}

// Validate checks a tuple's size, signs and, in strict mode, field ranges.
func Validate(t Tuple, strict bool) (Triple, error) {
	input := fmt.Sprint([]int64(t))
	if len(t) != 3 {
		return Triple{}, &Error{Kind: KindWrongSize, Value: int64(len(t)), Input: input}
	}

	fields := [3]Field{FieldHours, FieldMinutes, FieldSeconds}
	for i, v := range t {
		if v < 0 {
			return Triple{}, &Error{Kind: KindNegative, Field: fields[i], Value: v, Input: input}
		}
	}

	return checkStrict(Triple{Hours: t[0], Minutes: t[1], Seconds: t[2]}, strict, input)
}

// parseField converts one matched group. An empty group did not participate
// in the match and means the field is absent.
func parseField(digits string, f Field, input string) (int64, error) {
	if digits == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Kind: KindOverflow, Field: f, Input: input}
		}
		return 0, &Error{Kind: KindFormat, Field: f, Input: input}
	}
	if n < 0 {
		return 0, &Error{Kind: KindNegative, Field: f, Value: n, Input: input}
	}
	return n, nil
}

// checkNegativeText explains a failed match: text whose first three
// colon-delimited fields include one starting with a minus sign is negative
// rather than malformed. Text the grammar matched never reaches it, so a
// minus sign in the ignored tail ("0:25:-3") is not an error.
func checkNegativeText(s string) error {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}

	fields := []Field{FieldMinutes, FieldSeconds}
	if len(parts) == 3 {
		fields = []Field{FieldHours, FieldMinutes, FieldSeconds}
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !strings.HasPrefix(p, "-") {
			continue
		}
		e := &Error{Kind: KindNegative, Input: s}
		if i < len(fields) {
			e.Field = fields[i]
		}
		if n, err := strconv.ParseInt(p, 10, 64); err == nil {
			e.Value = n
		}
		return e
	}
	return nil
}

func checkStrict(t Triple, strict bool, input string) (Triple, error) {
	if !strict {
		return t, nil
	}

	checks := [3]struct {
		field Field
		value int64
	}{
		{FieldHours, t.Hours},
		{FieldMinutes, t.Minutes},
		{FieldSeconds, t.Seconds},
	}
	for _, c := range checks {
		if c.value > c.field.Max() {
			return Triple{}, &Error{Kind: KindStrictness, Field: c.field, Value: c.value, Input: input}
		}
	}
	return t, nil
}
