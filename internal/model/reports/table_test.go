package reports

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/currconv/internal/entity/conversion"
)

func Test_OnRow_ShouldRoundForDisplayOnly(t *testing.T) {
	rec := conversion.Record{
		Timestamp: "2024-01-01 10:00:00",
		From:      "EUR",
		To:        "USD",
		Amount:    100,
		Result:    110.00000000000001,
		Rate:      1.1000000000000001,
	}

	assert.Equal(t,
		[]string{"2024-01-01 10:00:00", "EUR", "USD", "100.00", "110.00", "1.1000"},
		Row(rec))
	assert.Equal(t, 1.1000000000000001, rec.Rate)
}

func Test_OnPeriodStart_ShouldUseCalendarBoundaries(t *testing.T) {
	at := time.Date(2024, 5, 15, 13, 45, 0, 0, time.Local)

	day, err := PeriodStart("day", at)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local), day)

	month, err := PeriodStart("month", at)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), month)

	year, err := PeriodStart("year", at)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), year)

	all, err := PeriodStart("", at)
	require.NoError(t, err)
	assert.True(t, all.IsZero())
}

func Test_OnUnknownPeriod_ShouldFail(t *testing.T) {
	_, err := PeriodStart("fortnight", time.Now())
	assert.True(t, errors.Is(err, ErrUnknownPeriod))
}

func Test_OnFilterSince_ShouldKeepBoundary(t *testing.T) {
	recs := []conversion.Record{
		{Timestamp: "2024-04-30 23:59:59"},
		{Timestamp: "2024-05-01 00:00:00"},
		{Timestamp: "2024-05-20 08:00:00"},
	}

	kept := FilterSince(recs, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local))

	require.Len(t, kept, 2)
	assert.Equal(t, "2024-05-01 00:00:00", kept[0].Timestamp)
}
