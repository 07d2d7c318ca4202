// Package codec serializes durations for config files and wire messages.
//
// Duration is a time.Duration field type that reads any duration shape a
// decoder can produce (a clock string, integer seconds or a three-item
// [hours, minutes, seconds] sequence) and writes clock notation, "H:MM:SS".
// It implements the text, JSON, YAML, TOML and CBOR (un)marshalling
// interfaces, so it can be dropped into any config struct:
//
//	type Config struct {
//	    Timeout codec.Duration `yaml:"timeout" toml:"timeout" json:"timeout"`
//	}
//
// Decoding is relaxed: "90:00" is read as ninety minutes rather than rejected.
//
// # CBOR
//
// CBOR uses deterministic encoding (canonical key order, no indefinite
// lengths). A Duration is encoded as a TagDuration item, {1: seconds,
// -9: nanoseconds}, and keeps sub-second precision. Untagged clock strings,
// integers and triples are accepted on input.
package codec
