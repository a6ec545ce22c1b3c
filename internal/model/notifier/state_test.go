package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/currconv/internal/entity/currency"
)

var eurUsd = currency.NewPair("EUR", "USD")

func Test_OnFirstSampleAtThreshold_ShouldAlert(t *testing.T) {
	state := NewState()

	assert.True(t, Evaluate(state, eurUsd, 1.1, 1.1, true))
}

func Test_OnFirstSampleBelowThreshold_ShouldNotAlert(t *testing.T) {
	state := NewState()

	assert.False(t, Evaluate(state, eurUsd, 1.09, 1.1, true))
}

func Test_OnRepeatedSampleAboveThreshold_ShouldNotRetrigger(t *testing.T) {
	state := NewState()

	assert.True(t, Evaluate(state, eurUsd, 1.1, 1.1, true))
	assert.False(t, Evaluate(state, eurUsd, 1.1, 1.1, true))
	assert.False(t, Evaluate(state, eurUsd, 1.2, 1.1, true))
}

func Test_OnDropAndRise_ShouldRetrigger(t *testing.T) {
	state := NewState()

	assert.True(t, Evaluate(state, eurUsd, 1.2, 1.1, true))
	assert.False(t, Evaluate(state, eurUsd, 1.0, 1.1, true))
	assert.True(t, Evaluate(state, eurUsd, 1.1, 1.1, true))
}

func Test_OnDisabled_ShouldNeverAlert(t *testing.T) {
	state := NewState()

	assert.False(t, Evaluate(state, eurUsd, 5, 1, false))
	assert.False(t, Evaluate(state, eurUsd, 0.5, 1, false))
	assert.False(t, Evaluate(state, eurUsd, 5, 1, false))
}

func Test_OnDisabled_ShouldStillRecordRate(t *testing.T) {
	state := NewState()

	Evaluate(state, eurUsd, 1.3, 1.1, false)
	last, ok := state.LastRate(eurUsd)
	assert.True(t, ok)
	assert.Equal(t, 1.3, last)

	// enabling while already above does not fire a stale alert
	assert.False(t, Evaluate(state, eurUsd, 1.3, 1.1, true))
}

func Test_OnPairs_ShouldTrackIndependently(t *testing.T) {
	state := NewState()
	usdEur := eurUsd.Swap()

	assert.True(t, Evaluate(state, eurUsd, 1.2, 1.0, true))
	assert.False(t, Evaluate(state, usdEur, 0.9, 1.0, true))
	assert.True(t, Evaluate(state, usdEur, 1.0, 1.0, true))
	assert.Equal(t, 2, state.Len())
}
