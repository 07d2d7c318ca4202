package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramono/duration/pkg/codec"
	"github.com/paramono/duration/pkg/duration"
)

func writeBatchFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeJSONL(t *testing.T, data []byte) []Result {
	t.Helper()
	var results []Result
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var r Result
		require.NoError(t, dec.Decode(&r))
		results = append(results, r)
	}
	return results
}

func TestLoadBatch_Formats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"in.yaml", "inputs:\n  - \"1:23:45\"\n  - 5025\n  - [1, 23, 45]\n"},
		{"in.yml", "inputs: [\"1:23:45\", 5025, [1, 23, 45]]\n"},
		{"in.toml", "inputs = [\"1:23:45\", 5025, [1, 23, 45]]\n"},
		{"in.json", `{"inputs": ["1:23:45", 5025, [1, 23, 45]]}`},
	}

	conv := duration.NewConverter(duration.DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs, err := LoadBatch(writeBatchFile(t, tt.name, tt.content))
			require.NoError(t, err)
			require.Len(t, inputs, 3)

			for _, raw := range inputs {
				r := Evaluate(conv, raw)
				assert.False(t, r.Failed(), "input %v: %s", raw, r.Error)
				assert.Equal(t, int64(5025), r.Seconds)
				assert.Equal(t, []int64{1, 23, 45}, r.Tuple)
				assert.Equal(t, "PT01H23M45S", r.ISO8601)
			}
		})
	}
}

func TestLoadBatch_CBOR(t *testing.T) {
	data, err := codec.Marshal(BatchFile{Inputs: []any{"0:25", 227}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "in.cbor")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	inputs, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	conv := duration.NewConverter(duration.DefaultConfig())
	assert.Equal(t, "PT25S", Evaluate(conv, inputs[0]).ISO8601)
	assert.Equal(t, "PT03M47S", Evaluate(conv, inputs[1]).ISO8601)
}

func TestLoadBatch_Errors(t *testing.T) {
	_, err := LoadBatch(writeBatchFile(t, "in.txt", "1:23:45"))
	assert.ErrorContains(t, err, "unknown batch file extension")

	_, err = LoadBatch(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read batch file")

	_, err = LoadBatch(writeBatchFile(t, "bad.json", "{"))
	assert.ErrorContains(t, err, "failed to decode batch file")
}

func TestEvaluate_Failures(t *testing.T) {
	conv := duration.NewConverter(duration.DefaultConfig())

	tests := []struct {
		raw  any
		kind duration.Kind
	}{
		{"24:00:00", duration.KindStrictness},
		{"25", duration.KindFormat},
		{"-1:00", duration.KindNegative},
		{"0:00", duration.KindEmpty},
		{[]any{1, 2}, duration.KindWrongSize},
		{true, duration.KindUnsupportedType},
	}

	for _, tt := range tests {
		r := Evaluate(conv, tt.raw)
		assert.True(t, r.Failed(), "input %v", tt.raw)
		assert.Equal(t, tt.kind.String(), r.Kind, "input %v", tt.raw)
		assert.Empty(t, r.ISO8601)
		assert.Nil(t, r.Tuple)
	}
}

func TestEvaluate_LargeTotals(t *testing.T) {
	conv := duration.NewConverter(duration.DefaultConfig())

	for _, name := range []string{"in.json", "in.yaml", "in.toml"} {
		t.Run(name, func(t *testing.T) {
			content := `{"inputs": [9007199254740993]}`
			switch name {
			case "in.yaml":
				content = "inputs: [9007199254740993]\n"
			case "in.toml":
				content = "inputs = [9007199254740993]\n"
			}
			inputs, err := LoadBatch(writeBatchFile(t, name, content))
			require.NoError(t, err)
			require.Len(t, inputs, 1)

			r := Evaluate(conv, inputs[0])
			require.False(t, r.Failed(), r.Error)
			assert.Equal(t, int64(9007199254740993), r.Seconds)
			assert.Zero(t, r.Nanos)
		})
	}
}

func TestRunBatch_JSONL(t *testing.T) {
	path := writeBatchFile(t, "in.yaml", "inputs:\n  - \"24:59:21\"\n  - \"bogus\"\n")

	var buf bytes.Buffer
	conv := duration.NewConverter(duration.Config{Strict: false, ForceInt: true})
	require.NoError(t, RunBatch(path, "jsonl", conv, &buf))

	results := decodeJSONL(t, buf.Bytes())
	require.Len(t, results, 2)

	assert.Equal(t, "24:59:21", results[0].Input)
	assert.Equal(t, int64(89961), results[0].Seconds)
	assert.Equal(t, []int64{24, 59, 21}, results[0].Tuple)
	assert.Equal(t, "P1DT00H59M21S", results[0].ISO8601)

	assert.Equal(t, "bogus", results[1].Input)
	assert.Equal(t, "FORMAT", results[1].Kind)
	assert.Contains(t, results[1].Error, "invalid duration string")
}

func TestRunBatch_CSV(t *testing.T) {
	path := writeBatchFile(t, "in.yaml", "inputs:\n  - \"1:23:45\"\n  - \"25\"\n")

	var buf bytes.Buffer
	conv := duration.NewConverter(duration.DefaultConfig())
	require.NoError(t, RunBatch(path, "csv", conv, &buf))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"input", "seconds", "tuple", "iso8601", "kind", "error"}, rows[0])
	assert.Equal(t, []string{"1:23:45", "5025", "(1, 23, 45)", "PT01H23M45S", "", ""}, rows[1])
	assert.Equal(t, "25", rows[2][0])
	assert.Equal(t, "FORMAT", rows[2][4])
}

func TestRunBatch_CBOR(t *testing.T) {
	path := writeBatchFile(t, "in.json", `{"inputs": ["3:47"]}`)

	var buf bytes.Buffer
	conv := duration.NewConverter(duration.DefaultConfig())
	require.NoError(t, RunBatch(path, "cbor", conv, &buf))

	var r Result
	require.NoError(t, codec.NewDecoder(&buf).Decode(&r))
	assert.Equal(t, "3:47", r.Input)
	assert.Equal(t, int64(227), r.Seconds)
	assert.Equal(t, "PT03M47S", r.ISO8601)
}

func TestRunBatch_UnknownFormat(t *testing.T) {
	path := writeBatchFile(t, "in.yaml", "inputs: [\"1:00\"]\n")

	var buf bytes.Buffer
	err := RunBatch(path, "xml", duration.NewConverter(duration.DefaultConfig()), &buf)
	assert.ErrorContains(t, err, "unknown format")
}
