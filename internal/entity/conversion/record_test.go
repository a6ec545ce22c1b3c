package conversion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnNewRecord_ShouldDeriveRate(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	rec := NewRecord(at, "EUR", "USD", 100, 110)

	assert.Equal(t, "2024-01-01 10:00:00", rec.Timestamp)
	assert.Equal(t, 1.1, rec.Rate)
	assert.Equal(t, "EUR->USD", rec.Pair().String())

	parsed, err := rec.Time()
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))
}

func Test_OnZeroAmount_ShouldUseZeroRate(t *testing.T) {
	rec := NewRecord(time.Now(), "EUR", "USD", 0, 0)
	assert.Equal(t, 0.0, rec.Rate)
	assert.Equal(t, 0.0, RateOf(0, 5))
}
