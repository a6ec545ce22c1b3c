package converter

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/currconv/internal/model/rates"
)

// fixedTable answers with a constant rate for any known pair.
type fixedTable struct {
	codes []string
	rate  float64
}

func (f fixedTable) Currencies() []string {
	return f.codes
}

func (f fixedTable) Convert(amount float64, from, to string) (float64, error) {
	for _, code := range []string{from, to} {
		if !contains(f.codes, code) {
			return 0, errors.Wrap(rates.ErrUnknownCurrency, code)
		}
	}
	return amount * f.rate, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func Test_OnConvert_ShouldReturnResultAndRate(t *testing.T) {
	c := New(fixedTable{codes: []string{"EUR", "USD"}, rate: 1.1})

	result, rate, err := c.Convert(100, "EUR", "USD")

	require.NoError(t, err)
	assert.InDelta(t, 110.0, result, 1e-9)
	assert.InDelta(t, 1.1, rate, 1e-9)
}

func Test_OnConvert_RateShouldBeResultOverAmount(t *testing.T) {
	c := New(fixedTable{codes: []string{"EUR", "USD"}, rate: 1.0712})

	for _, amount := range []float64{0.01, 1, 3.5, 100, 12345.678} {
		result, rate, err := c.Convert(amount, "EUR", "USD")
		require.NoError(t, err)
		assert.Equal(t, result/amount, rate)
	}
}

func Test_OnZeroAmount_ShouldReturnZeroRate(t *testing.T) {
	c := New(fixedTable{codes: []string{"EUR", "USD"}, rate: 1.1})

	result, rate, err := c.Convert(0, "EUR", "USD")

	require.NoError(t, err)
	assert.Equal(t, 0.0, result)
	assert.Equal(t, 0.0, rate)
}

func Test_OnLowerCaseCodes_ShouldNormalize(t *testing.T) {
	c := New(fixedTable{codes: []string{"EUR", "USD"}, rate: 2})

	result, _, err := c.Convert(5, " eur", "usd ")

	require.NoError(t, err)
	assert.Equal(t, 10.0, result)
}

func Test_OnUnknownCurrency_ShouldSurfaceError(t *testing.T) {
	c := New(fixedTable{codes: []string{"EUR", "USD"}, rate: 1.1})

	_, _, err := c.Convert(10, "EUR", "XYZ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, rates.ErrUnknownCurrency))
}

func Test_OnListCurrencies_ShouldDeduplicateAndSort(t *testing.T) {
	c := New(fixedTable{codes: []string{"USD", "eur", "EUR", "JPY", "usd"}})

	assert.Equal(t, []string{"EUR", "JPY", "USD"}, c.ListCurrencies())
}

func Test_OnRealTable_ShouldConvertEURToUSD(t *testing.T) {
	c := New(rates.NewTable(time.Now(), map[string]float64{"USD": 1.1}))

	result, rate, err := c.Convert(100, "EUR", "USD")

	require.NoError(t, err)
	assert.InDelta(t, 110.0, result, 1e-9)
	assert.InDelta(t, 1.1, rate, 1e-9)
}
