package rates

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnEmbeddedSnapshot_ShouldKnowMajorCurrencies(t *testing.T) {
	table, err := Embedded()
	require.NoError(t, err)

	codes := table.Currencies()
	assert.Contains(t, codes, "EUR")
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "JPY")
	assert.NotContains(t, codes, "")
	assert.IsIncreasing(t, codes)
	assert.Equal(t, 2024, table.Date().Year())
}

func Test_OnConvert_ShouldGoThroughEUR(t *testing.T) {
	table := NewTable(time.Now(), map[string]float64{"USD": 1.1, "GBP": 0.8})

	res, err := table.Convert(100, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 110.0, res, 1e-9)

	res, err = table.Convert(110, "usd", "gbp")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, res, 1e-9)
}

func Test_OnUnknownCode_ShouldReturnUnknownCurrency(t *testing.T) {
	table := NewTable(time.Now(), map[string]float64{"USD": 1.1})

	_, err := table.Convert(1, "EUR", "XXX")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = table.Convert(1, "ABC", "USD")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func Test_OnWrittenSnapshot_ShouldParseBack(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	table := NewTable(date, map[string]float64{"USD": 1.0876, "JPY": 161.2})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	assert.True(t, strings.HasPrefix(buf.String(), "Date,JPY,USD\n5 March 2024,"))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, table.Currencies(), parsed.Currencies())
	assert.True(t, date.Equal(parsed.Date()))
	rate, err := parsed.Rate("USD")
	require.NoError(t, err)
	assert.Equal(t, 1.0876, rate)
}

func Test_OnBrokenSnapshot_ShouldFail(t *testing.T) {
	_, err := Parse(strings.NewReader("Date, USD\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("Date, USD\nyesterday, 1.1\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("Date, USD\n1 May 2024, abc\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("Date, USD\n1 May 2024, -2\n"))
	assert.Error(t, err)
}

func Test_OnMissingSnapshotFile_ShouldFallBackToEmbedded(t *testing.T) {
	table, err := Load(t.TempDir() + "/missing.csv")
	require.NoError(t, err)
	assert.Contains(t, table.Currencies(), "USD")
}
