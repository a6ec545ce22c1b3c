package currency

import (
	"strings"
)

const (
	EUR = "EUR"
	USD = "USD"
)

// CodeLength is the length of an ISO 4217 alphabetic code.
const CodeLength = 3

// Pair is an ordered (from, to) couple of currency codes.
type Pair struct {
	From string
	To   string
}

func NewPair(from, to string) Pair {
	return Pair{From: Normalize(from), To: Normalize(to)}
}

func (p Pair) Swap() Pair {
	return Pair{From: p.To, To: p.From}
}

func (p Pair) String() string {
	return p.From + "->" + p.To
}

// Normalize upper-cases and trims a user supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
