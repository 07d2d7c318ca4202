package duration

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"string", "1:23:45", Text("1:23:45")},
		{"bytes", []byte("3:47"), Text("3:47")},
		{"value", Seconds(5), Seconds(5)},
		{"int", 5025, Seconds(5025)},
		{"int32", int32(60), Seconds(60)},
		{"uint64", uint64(89961), Seconds(89961)},
		{"duration", 90 * time.Second, Elapsed(90 * time.Second)},
		{"integral float", float64(5025), Seconds(5025)},
		{"fractional float", 1.5, Elapsed(1500 * time.Millisecond)},
		{"int slice", []int{1, 23, 45}, Tuple{1, 23, 45}},
		{"int64 slice", []int64{1, 23, 45}, Tuple{1, 23, 45}},
		{"any slice", []any{1, uint64(23), int64(45)}, Tuple{1, 23, 45}},
		{"short any slice", []any{1, 2}, Tuple{1, 2}},
		{"json integer", json.Number("9007199254740993"), Seconds(9007199254740993)},
		{"json fraction", json.Number("1.5"), Elapsed(1500 * time.Millisecond)},
		{"json tuple", []any{json.Number("1"), json.Number("23"), json.Number("45")}, Tuple{1, 23, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	tests := []struct {
		in       any
		typeName string
	}{
		{nil, "<nil>"},
		{true, "bool"},
		{map[string]any{}, "map[string]interface {}"},
		{[]any{1, "x", 3}, "string"},
		{[]string{"1"}, "[]string"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			_, err := FromAny(tt.in)
			require.ErrorIs(t, err, ErrUnsupportedType)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.typeName, e.Input)
		})
	}
}

func TestFromAny_Overflow(t *testing.T) {
	_, err := FromAny(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = FromAny(math.Inf(1))
	assert.ErrorIs(t, err, ErrOverflow)
}
