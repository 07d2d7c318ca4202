package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/paramono/duration/pkg/codec"
	"github.com/paramono/duration/pkg/duration"
)

// BatchFile is the layout of a batch input file.
//
//	inputs:
//	  - "1:23:45"
//	  - 5025
//	  - [1, 23, 45]
type BatchFile struct {
	Inputs []any `yaml:"inputs" toml:"inputs" json:"inputs" cbor:"inputs"`
}

// Result is the outcome of converting one batch input.
type Result struct {
	Input   string  `json:"input" cbor:"1,keyasint"`
	Seconds int64   `json:"seconds,omitempty" cbor:"2,keyasint,omitempty"`
	Nanos   int64   `json:"nanos,omitempty" cbor:"7,keyasint,omitempty"`
	Tuple   []int64 `json:"tuple,omitempty" cbor:"3,keyasint,omitempty"`
	ISO8601 string  `json:"iso8601,omitempty" cbor:"4,keyasint,omitempty"`
	Error   string  `json:"error,omitempty" cbor:"5,keyasint,omitempty"`
	Kind    string  `json:"kind,omitempty" cbor:"6,keyasint,omitempty"`
}

// Failed reports whether the input could not be converted.
func (r Result) Failed() bool {
	return r.Error != ""
}

// LoadBatch reads the inputs of a batch file. The format is chosen by
// extension: .yaml/.yml, .toml, .json or .cbor.
func LoadBatch(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var bf BatchFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bf)
	case ".toml":
		_, err = toml.Decode(string(data), &bf)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&bf)
	case ".cbor":
		err = codec.Unmarshal(data, &bf)
	default:
		return nil, fmt.Errorf("unknown batch file extension: %q (supported: .yaml, .yml, .toml, .json, .cbor)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode batch file: %w", err)
	}
	return bf.Inputs, nil
}

// Evaluate converts one raw input into a Result.
func Evaluate(conv *duration.Converter, raw any) Result {
	r := Result{Input: describe(raw)}

	v, err := duration.FromAny(raw)
	if err == nil {
		var s duration.Span
		s, err = conv.ToSeconds(v)
		r.Seconds, r.Nanos = s.Whole, s.Nanos
	}
	if err == nil {
		var t duration.Triple
		t, err = conv.ToTuple(v)
		r.Tuple = []int64{t.Hours, t.Minutes, t.Seconds}
	}
	if err == nil {
		r.ISO8601, err = conv.ToISO8601(v)
	}

	if err != nil {
		return Result{
			Input: r.Input,
			Error: err.Error(),
			Kind:  duration.KindOf(err).String(),
		}
	}
	return r
}

func describe(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

// RunBatch converts every input of a batch file and writes the results in
// the given format (jsonl, csv or cbor). Per-input failures are recorded in
// the results, not returned.
func RunBatch(path, format string, conv *duration.Converter, w io.Writer) error {
	inputs, err := LoadBatch(path)
	if err != nil {
		return err
	}

	results := make([]Result, 0, len(inputs))
	failed := 0
	for _, raw := range inputs {
		r := Evaluate(conv, raw)
		if r.Failed() {
			failed++
			slog.Warn("conversion failed", "input", r.Input, "kind", r.Kind, "error", r.Error)
		}
		results = append(results, r)
	}
	slog.Info("batch converted", "path", path, "inputs", len(inputs), "failed", failed)

	return WriteResults(w, format, results)
}

// WriteResults encodes results in the given format.
func WriteResults(w io.Writer, format string, results []Result) error {
	switch format {
	case "jsonl":
		return writeJSONL(w, results)
	case "csv":
		return writeCSV(w, results)
	case "cbor":
		return writeCBOR(w, results)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv, cbor)", format)
	}
}

func writeJSONL(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	header := []string{"input", "seconds", "tuple", "iso8601", "kind", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range results {
		row := []string{r.Input, "", "", r.ISO8601, r.Kind, r.Error}
		if !r.Failed() {
			row[1] = FormatSeconds(duration.Span{Whole: r.Seconds, Nanos: r.Nanos})
			row[2] = FormatTuple(duration.Triple{Hours: r.Tuple[0], Minutes: r.Tuple[1], Seconds: r.Tuple[2]})
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeCBOR(w io.Writer, results []Result) error {
	encoder := codec.NewEncoder(w)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}
