package reports

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/currconv/internal/entity/conversion"
)

var ErrUnknownPeriod = errors.New("unknown report period")

// Headers are the history table columns.
var Headers = []string{"Date", "From", "To", "Amount", "Result", "Rate"}

var periods = map[string]func(n *now.Now) time.Time{
	"":      func(*now.Now) time.Time { return time.Time{} },
	"day":   func(n *now.Now) time.Time { return n.BeginningOfDay() },
	"week":  func(n *now.Now) time.Time { return n.BeginningOfWeek() },
	"month": func(n *now.Now) time.Time { return n.BeginningOfMonth() },
	"year":  func(n *now.Now) time.Time { return n.BeginningOfYear() },
}

// Row renders a record for display. Rounding happens here only, stored values keep full precision.
func Row(rec conversion.Record) []string {
	return []string{
		rec.Timestamp,
		rec.From,
		rec.To,
		decimal.NewFromFloat(rec.Amount).StringFixed(2),
		decimal.NewFromFloat(rec.Result).StringFixed(2),
		FormatRate(rec.Rate),
	}
}

func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(4)
}

func Rows(recs []conversion.Record) [][]string {
	res := make([][]string, 0, len(recs))
	for _, rec := range recs {
		res = append(res, Row(rec))
	}
	return res
}

// PeriodStart is the first instant of the named period containing at.
// The empty period starts at the zero time.
func PeriodStart(period string, at time.Time) (time.Time, error) {
	begin, ok := periods[period]
	if !ok {
		return time.Time{}, errors.Wrapf(ErrUnknownPeriod, "%q", period)
	}
	return begin(now.With(at)), nil
}

// FilterSince keeps records stamped at or after since.
func FilterSince(recs []conversion.Record, since time.Time) []conversion.Record {
	res := make([]conversion.Record, 0, len(recs))
	for _, rec := range recs {
		at, err := rec.Time()
		if err != nil || at.Before(since) {
			continue
		}
		res = append(res, rec)
	}
	return res
}

func Periods() []string {
	return []string{"day", "week", "month", "year"}
}
