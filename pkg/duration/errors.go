package duration

import (
	"errors"
	"fmt"
)

// Duration conversion errors.
var (
	// ErrInvalidDuration matches every error returned by this package.
	ErrInvalidDuration = errors.New("invalid duration value")

	ErrFormat          = errors.New("invalid duration format")
	ErrNegative        = errors.New("negative duration")
	ErrWrongSize       = errors.New("wrong tuple size")
	ErrStrictness      = errors.New("duration field out of range")
	ErrUnsupportedType = errors.New("unsupported duration type")
	ErrEmpty           = errors.New("empty duration")
	ErrOverflow        = errors.New("duration overflow")
)

// Kind classifies a conversion failure.
type Kind uint8

const (
	// KindFormat means the text does not match the clock grammar.
	KindFormat Kind = iota + 1

	// KindNegative means a field or total is negative.
	KindNegative

	// KindWrongSize means a tuple does not have exactly three elements.
	KindWrongSize

	// KindStrictness means a field exceeds its range in strict mode.
	KindStrictness

	// KindUnsupportedType means the input is not one of the accepted shapes.
	KindUnsupportedType

	// KindEmpty means hours, minutes and seconds are all zero.
	KindEmpty

	// KindOverflow means the total does not fit the target representation.
	KindOverflow
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "FORMAT"
	case KindNegative:
		return "NEGATIVE"
	case KindWrongSize:
		return "WRONG_SIZE"
	case KindStrictness:
		return "STRICTNESS"
	case KindUnsupportedType:
		return "UNSUPPORTED_TYPE"
	case KindEmpty:
		return "EMPTY"
	case KindOverflow:
		return "OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindNegative:
		return ErrNegative
	case KindWrongSize:
		return ErrWrongSize
	case KindStrictness:
		return ErrStrictness
	case KindUnsupportedType:
		return ErrUnsupportedType
	case KindEmpty:
		return ErrEmpty
	case KindOverflow:
		return ErrOverflow
	default:
		return nil
	}
}

// Field names one component of a duration triple.
type Field uint8

const (
	FieldNone Field = iota
	FieldHours
	FieldMinutes
	FieldSeconds
)

// String returns the lower-case field name.
func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	default:
		return "none"
	}
}

// Max returns the largest value the field may hold in strict mode.
func (f Field) Max() int64 {
	switch f {
	case FieldHours:
		return 23
	case FieldMinutes, FieldSeconds:
		return 59
	default:
		return 0
	}
}

// Error describes why a value could not be converted.
type Error struct {
	Kind Kind

	// Field is the offending component, if the failure concerns one.
	Field Field

	// Value is the offending field value, or the tuple length for
	// KindWrongSize.
	Value int64

	// Input is the rejected text, tuple or Go type name.
	Input string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFormat:
		return fmt.Sprintf("invalid duration string: %q", e.Input)
	case KindNegative:
		if e.Field != FieldNone {
			return fmt.Sprintf("%s must not be negative, got %d in duration %s", e.Field, e.Value, e.Input)
		}
		return fmt.Sprintf("negative duration %s is not allowed", e.Input)
	case KindWrongSize:
		return fmt.Sprintf("duration tuple must have 3 elements (hours, minutes, seconds), got %d", e.Value)
	case KindStrictness:
		return fmt.Sprintf("%s cannot have a value greater than %d in strict mode, got %d", e.Field, e.Field.Max(), e.Value)
	case KindUnsupportedType:
		return fmt.Sprintf("unsupported duration value of type %s", e.Input)
	case KindEmpty:
		return fmt.Sprintf("no hours, minutes or seconds found in %s", e.Input)
	case KindOverflow:
		return fmt.Sprintf("duration %s exceeds the representable range", e.Input)
	default:
		return ErrInvalidDuration.Error()
	}
}

// Is reports whether target is ErrInvalidDuration or the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidDuration || target == e.Kind.sentinel()
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
