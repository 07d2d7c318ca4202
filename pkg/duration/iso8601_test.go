package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatISO8601(t *testing.T) {
	tests := []struct {
		name     string
		whole    int64
		nanos    int64
		forceInt bool
		want     string
	}{
		{"zero", 0, 0, true, "PT00S"},
		{"seconds only", 25, 0, true, "PT25S"},
		{"trailing zero kept", 110, 0, true, "PT01M50S"},
		{"ten seconds", 10, 0, true, "PT10S"},
		{"minutes force zero seconds", 60, 0, true, "PT01M00S"},
		{"hours force minutes", 3605, 0, true, "PT01H00M05S"},
		{"one day", 86400, 0, true, "P1DT00H00M00S"},
		{"day carry", 89961, 0, true, "P1DT00H59M21S"},
		{"many days", 10*86400 + 3661, 0, true, "P10DT01H01M01S"},
		{"half second", 1, 500_000_000, false, "PT01.5S"},
		{"quarter past minute", 61, 250_000_000, false, "PT01M01.25S"},
		{"one microsecond", 0, 1000, false, "PT00.000001S"},
		{"sub-microsecond rounds away", 0, 400, false, "PT00S"},
		{"rounds up to next second", 59, 999_999_999, false, "PT01M00S"},
		{"force int rounds half up", 1, 500_000_000, true, "PT02S"},
		{"force int rounds down", 1, 499_999_999, true, "PT01S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatISO8601(tt.whole, tt.nanos, tt.forceInt)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISO8601(t *testing.T) {
	got, err := ISO8601(90*time.Minute+250*time.Millisecond, false)
	require.NoError(t, err)
	assert.Equal(t, "PT01H30M00.25S", got)

	got, err = ISO8601(90*time.Minute+250*time.Millisecond, true)
	require.NoError(t, err)
	assert.Equal(t, "PT01H30M00S", got)

	_, err = ISO8601(-time.Second, true)
	assert.ErrorIs(t, err, ErrNegative)
}
