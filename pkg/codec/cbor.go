package codec

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/paramono/duration/pkg/duration"
)

// TagDuration is the CBOR tag for a duration (RFC 9581). Its content is a
// map holding whole seconds under key 1 and nanoseconds under key -9.
const TagDuration = 1002

// encMode is the CBOR encoder mode: deterministic output with canonical key
// ordering, so equal durations encode to equal bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Untyped integers decode as int64 so they map straight onto Seconds.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		IntDec:            cbor.IntDecConvertSigned,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// durationContent is the content of a TagDuration item.
type durationContent struct {
	Seconds int64 `cbor:"1,keyasint"`
	Nanos   int64 `cbor:"-9,keyasint,omitempty"`
}

// isTag reports whether data starts with a CBOR tag (major type 6).
func isTag(data []byte) bool {
	return len(data) > 0 && data[0]>>5 == 6
}

func encodeDuration(d time.Duration) ([]byte, error) {
	return encMode.Marshal(cbor.Tag{
		Number: TagDuration,
		Content: durationContent{
			Seconds: int64(d / time.Second),
			Nanos:   int64(d % time.Second),
		},
	})
}

// decodeDuration reads a TagDuration item. The total goes through the
// converter, so negative or out-of-range content fails like any other input.
func decodeDuration(data []byte) (time.Duration, error) {
	var tag cbor.RawTag
	if err := decMode.Unmarshal(data, &tag); err != nil {
		return 0, err
	}
	if tag.Number != TagDuration {
		return 0, fmt.Errorf("unexpected CBOR tag %d: %w", tag.Number, duration.ErrUnsupportedType)
	}

	var c durationContent
	if err := decMode.Unmarshal(tag.Content, &c); err != nil {
		return 0, err
	}
	if c.Nanos < 0 || c.Nanos >= int64(time.Second) {
		return 0, &duration.Error{Kind: duration.KindFormat, Input: fmt.Sprintf("%ds %dns", c.Seconds, c.Nanos)}
	}

	whole, err := decoder.ToElapsed(duration.Seconds(c.Seconds))
	if err != nil {
		return 0, err
	}
	if whole > time.Duration(math.MaxInt64)-time.Duration(c.Nanos) {
		return 0, &duration.Error{Kind: duration.KindOverflow, Input: fmt.Sprint(c.Seconds)}
	}
	return whole + time.Duration(c.Nanos), nil
}
