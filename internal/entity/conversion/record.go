package conversion

import (
	"time"

	"max.ks1230/currconv/internal/entity/currency"
)

// TimestampLayout is how record timestamps are stored. It sorts lexicographically.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one past conversion. It is a value: copies never alias.
type Record struct {
	Timestamp string
	From      string
	To        string
	Amount    float64
	Result    float64
	Rate      float64
}

// NewRecord stamps a conversion at the given instant and derives its rate.
func NewRecord(at time.Time, from, to string, amount, result float64) Record {
	return Record{
		Timestamp: at.Format(TimestampLayout),
		From:      from,
		To:        to,
		Amount:    amount,
		Result:    result,
		Rate:      RateOf(amount, result),
	}
}

// RateOf is result/amount, or 0 for a zero amount.
func RateOf(amount, result float64) float64 {
	if amount == 0 {
		return 0
	}
	return result / amount
}

func (r Record) Pair() currency.Pair {
	return currency.Pair{From: r.From, To: r.To}
}

// Time parses the timestamp in the local zone, the zone it was written in.
func (r Record) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, r.Timestamp, time.Local)
}
