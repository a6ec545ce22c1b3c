package notifier

import "max.ks1230/currconv/internal/entity/currency"

// State remembers the last rate seen for each pair. It is owned by the
// caller and handed to Evaluate. The zero value is not usable, use NewState.
type State struct {
	lastRate map[currency.Pair]float64
}

func NewState() *State {
	return &State{lastRate: make(map[currency.Pair]float64)}
}

// LastRate reports the previous sample of a pair, if any.
func (s *State) LastRate(pair currency.Pair) (float64, bool) {
	rate, ok := s.lastRate[pair]
	return rate, ok
}

// Len is the number of distinct pairs seen.
func (s *State) Len() int {
	return len(s.lastRate)
}

// Evaluate records rate as the latest sample of pair and reports whether it
// crossed threshold from below: the first sample of a pair counts as coming
// from below. Disabled evaluation never alerts but still records the sample.
func Evaluate(state *State, pair currency.Pair, rate, threshold float64, enabled bool) bool {
	prev, seen := state.lastRate[pair]
	state.lastRate[pair] = rate

	if !enabled {
		return false
	}
	if !seen {
		return rate >= threshold
	}
	return prev < threshold && threshold <= rate
}
