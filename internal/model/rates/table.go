package rates

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/currconv/internal/entity/currency"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Table is a snapshot of reference rates expressed against EUR.
type Table struct {
	date  time.Time
	rates map[string]float64
}

// NewTable copies rates and pins EUR to 1.
func NewTable(date time.Time, rates map[string]float64) *Table {
	t := &Table{
		date:  date,
		rates: make(map[string]float64, len(rates)+1),
	}
	for code, rate := range rates {
		t.rates[currency.Normalize(code)] = rate
	}
	t.rates[currency.EUR] = 1
	return t
}

func (t *Table) Date() time.Time {
	return t.date
}

// Currencies returns the known codes, sorted.
func (t *Table) Currencies() []string {
	res := make([]string, 0, len(t.rates))
	for code := range t.rates {
		res = append(res, code)
	}
	sort.Strings(res)
	return res
}

// Rate returns how many units of code buy one EUR.
func (t *Table) Rate(code string) (float64, error) {
	rate, ok := t.rates[currency.Normalize(code)]
	if !ok {
		return 0, errors.Wrap(ErrUnknownCurrency, code)
	}
	return rate, nil
}

func (t *Table) Convert(amount float64, from, to string) (float64, error) {
	fromRate, err := t.Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := t.Rate(to)
	if err != nil {
		return 0, err
	}
	return amount / fromRate * toRate, nil
}

func (t *Table) relativesOf(base string) []string {
	var relatives []string
	for _, code := range t.Currencies() {
		if code != base {
			relatives = append(relatives, code)
		}
	}
	return relatives
}
