package codec

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/paramono/duration/pkg/duration"
)

// decoder reads config values. Fields above their natural range are carried
// rather than rejected.
var decoder = duration.NewConverter(duration.Config{Strict: false, ForceInt: true})

// Duration is a time.Duration that (un)marshals in clock notation. Text
// encodings drop sub-second precision; CBOR keeps it under TagDuration.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

// Triple returns the carry-normalized (hours, minutes, seconds) of d,
// dropping any sub-second remainder.
func (d Duration) Triple() duration.Triple {
	return duration.FromSeconds(int64(time.Duration(d) / time.Second))
}

// String returns d in clock notation, "H:MM:SS".
func (d Duration) String() string {
	return d.Triple().String()
}

// Decode converts any duration shape a decoder produced into a Duration.
func Decode(v any) (Duration, error) {
	val, err := duration.FromAny(v)
	if err != nil {
		return 0, err
	}
	el, err := decoder.ToElapsed(val)
	if err != nil {
		return 0, err
	}
	return Duration(el), nil
}

func (d Duration) check() error {
	if d < 0 {
		return fmt.Errorf("cannot encode %v: %w", time.Duration(d), duration.ErrNegative)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text is always read as
// a clock string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Decode(duration.Text(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a clock string, a
// number of seconds or an [hours, minutes, seconds] array.
func (d *Duration) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts a scalar (clock
// string or seconds) or a three-item sequence.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if err := d.set(raw); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Duration) UnmarshalTOML(raw any) error {
	return d.set(raw)
}

// MarshalCBOR implements cbor.Marshaler. The value is written as a
// TagDuration item.
func (d Duration) MarshalCBOR() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return encodeDuration(time.Duration(d))
}

// UnmarshalCBOR implements cbor.Unmarshaler. It accepts a TagDuration item
// or, untagged, any shape the other decoders accept.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	if isTag(data) {
		el, err := decodeDuration(data)
		if err != nil {
			return err
		}
		*d = Duration(el)
		return nil
	}

	var raw any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) set(raw any) error {
	v, err := Decode(raw)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ encoding.TextMarshaler   = Duration(0)
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ json.Marshaler           = Duration(0)
	_ json.Unmarshaler         = (*Duration)(nil)
	_ yaml.Marshaler           = Duration(0)
	_ yaml.Unmarshaler         = (*Duration)(nil)
	_ toml.Unmarshaler         = (*Duration)(nil)
	_ cbor.Marshaler           = Duration(0)
	_ cbor.Unmarshaler         = (*Duration)(nil)
)
