package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnEmptySeries_ShouldHaveNoBounds(t *testing.T) {
	_, ok := NewSeries().Bounds()
	assert.False(t, ok)
}

func Test_OnBounds_ShouldPadTenPercent(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 09:00:00", 1.0))
	require.NoError(t, s.Add("2024-01-01 10:00:00", 2.0))
	require.NoError(t, s.Add("2024-01-01 11:00:00", 1.5))

	b, ok := s.Bounds()

	require.True(t, ok)
	assert.InDelta(t, 0.9, b.Min, 1e-9)
	assert.InDelta(t, 2.1, b.Max, 1e-9)
	assert.Equal(t, 9, b.From.Hour())
	assert.Equal(t, 11, b.To.Hour())
}

func Test_OnFlatSeries_ShouldPadByFixedAmount(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 09:00:00", 1.1))

	b, ok := s.Bounds()

	require.True(t, ok)
	assert.InDelta(t, 1.0, b.Min, 1e-9)
	assert.InDelta(t, 1.2, b.Max, 1e-9)
}

func Test_OnBadTimestamp_ShouldRejectPoint(t *testing.T) {
	s := NewSeries()
	assert.Error(t, s.Add("yesterday", 1))
	assert.Equal(t, 0, s.Len())
}

func Test_OnClear_ShouldDropPoints(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 09:00:00", 1.1))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func Test_OnRender_ShouldNeedTwoPoints(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 09:00:00", 1.1))

	err := s.RenderPNG(&bytes.Buffer{}, "EUR->USD")
	assert.True(t, errors.Is(err, ErrNotEnoughPoints))
}

func Test_OnRender_ShouldProducePNG(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 09:00:00", 1.08))
	require.NoError(t, s.Add("2024-01-01 10:00:00", 1.10))
	require.NoError(t, s.Add("2024-01-01 11:00:00", 1.09))

	var buf bytes.Buffer
	require.NoError(t, s.RenderPNG(&buf, "EUR->USD"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func Test_OnSameTimestamp_ShouldWidenXRange(t *testing.T) {
	s := NewSeries()
	require.NoError(t, s.Add("2024-01-01 10:00:00", 1.1))
	require.NoError(t, s.Add("2024-01-01 10:00:00", 1.2))

	b, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, 2*time.Minute, b.To.Sub(b.From))
	assert.Equal(t, 59, b.From.Minute())

	var buf bytes.Buffer
	require.NoError(t, s.RenderPNG(&buf, "EUR->USD"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
