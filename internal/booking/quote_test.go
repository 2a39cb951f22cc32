package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name        string
		pickup      string
		ret         string
		pricePerDay uint32
		wantDays    int
		wantTotal   uint32
	}{
		{"two days", "2025-06-01", "2025-06-03", 8000, 2, 16000},
		{"single day", "2025-06-01", "2025-06-02", 6000, 1, 6000},
		{"week", "2025-06-01", "2025-06-08", 18000, 7, 126000},
		{"month boundary", "2025-06-30", "2025-07-02", 10000, 2, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pickup, err := ParseDate(tt.pickup)
			require.NoError(t, err)
			ret, err := ParseDate(tt.ret)
			require.NoError(t, err)

			q, err := NewQuote(pickup, ret, tt.pricePerDay)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, q.Days)
			assert.Equal(t, tt.wantTotal, q.TotalPrice)
		})
	}
}

func TestNewQuoteDistantReturnDate(t *testing.T) {
	pickup, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	ret, err := ParseDate("2900-06-01")
	require.NoError(t, err)

	q, err := NewQuote(pickup, ret, 6000)
	require.NoError(t, err)

	// The day count must match the real calendar distance, well past the
	// ~292-year ceiling of a time.Duration.
	assert.True(t, pickup.AddDate(0, 0, q.Days).Equal(ret))
	assert.Greater(t, q.Days, 300000)
	assert.Equal(t, uint32(q.Days)*6000, q.TotalPrice)
}

func TestNewQuoteRejectsBadRange(t *testing.T) {
	pickup, err := ParseDate("2025-06-03")
	require.NoError(t, err)

	// Return equal to pickup.
	_, err = NewQuote(pickup, pickup, 8000)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Return before pickup.
	ret, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	_, err = NewQuote(pickup, ret, 8000)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.Format(DateLayout))

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}
