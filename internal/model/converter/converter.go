package converter

import (
	"sort"

	"github.com/pkg/errors"
	"max.ks1230/currconv/internal/entity/conversion"
	"max.ks1230/currconv/internal/entity/currency"
)

// rateTable is the external rate source. Convert fails for unknown codes.
type rateTable interface {
	Currencies() []string
	Convert(amount float64, from, to string) (float64, error)
}

type Converter struct {
	table rateTable
}

func New(table rateTable) *Converter {
	return &Converter{table: table}
}

// Convert returns the converted amount and the rate it implies.
// There is no caching: every call reads the table as it is now.
func (c *Converter) Convert(amount float64, from, to string) (result, rate float64, err error) {
	result, err = c.table.Convert(amount, currency.Normalize(from), currency.Normalize(to))
	if err != nil {
		return 0, 0, errors.Wrap(err, "convert")
	}
	return result, conversion.RateOf(amount, result), nil
}

// ListCurrencies returns the supported codes without duplicates, sorted.
func (c *Converter) ListCurrencies() []string {
	seen := make(map[string]struct{})
	res := make([]string, 0)
	for _, code := range c.table.Currencies() {
		code = currency.Normalize(code)
		if _, ok := seen[code]; ok || code == "" {
			continue
		}
		seen[code] = struct{}{}
		res = append(res, code)
	}
	sort.Strings(res)
	return res
}
