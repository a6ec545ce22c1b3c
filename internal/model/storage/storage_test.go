package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/currconv/internal/entity/conversion"
)

type testConfig struct {
	driver string
	dsn    string
}

func (c testConfig) Driver() string {
	return c.driver
}

func (c testConfig) DSN() string {
	return c.dsn
}

func backends(t *testing.T) map[string]func(t *testing.T) History {
	return map[string]func(t *testing.T) History{
		"sqlite": func(t *testing.T) History {
			dsn := filepath.Join(t.TempDir(), "history.sqlite3")
			h, err := Open(context.Background(), testConfig{driver: "sqlite", dsn: dsn})
			require.NoError(t, err)
			t.Cleanup(func() { _ = h.Close() })
			return h
		},
		"memory": func(t *testing.T) History {
			h, err := Open(context.Background(), testConfig{driver: "memory"})
			require.NoError(t, err)
			return h
		},
	}
}

func record(ts string, from, to string, amount, result float64) conversion.Record {
	return conversion.Record{
		Timestamp: ts,
		From:      from,
		To:        to,
		Amount:    amount,
		Result:    result,
		Rate:      conversion.RateOf(amount, result),
	}
}

func timestamps(recs []conversion.Record) []string {
	res := make([]string, 0, len(recs))
	for _, r := range recs {
		res = append(res, r.Timestamp)
	}
	return res
}

func Test_OnFetchAll_ShouldOrderByTimestamp(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			h := open(t)

			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 100, 110)))
			require.NoError(t, h.Insert(ctx, record("2024-01-01 09:00:00", "EUR", "GBP", 100, 85)))
			require.NoError(t, h.Insert(ctx, record("2024-01-01 11:00:00", "USD", "JPY", 2, 310)))

			recs, err := Collect(ctx, h)
			require.NoError(t, err)
			assert.Equal(t,
				[]string{"2024-01-01 09:00:00", "2024-01-01 10:00:00", "2024-01-01 11:00:00"},
				timestamps(recs))
			assert.Equal(t, record("2024-01-01 09:00:00", "EUR", "GBP", 100, 85), recs[0])
		})
	}
}

func Test_OnEqualTimestamps_ShouldKeepInsertionOrder(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			h := open(t)

			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 1, 1.1)))
			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "GBP", 1, 0.8)))

			recs, err := Collect(ctx, h)
			require.NoError(t, err)
			require.Len(t, recs, 2)
			assert.Equal(t, "USD", recs[0].To)
			assert.Equal(t, "GBP", recs[1].To)
		})
	}
}

func Test_OnFetchAll_ShouldBeRestartable(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			h := open(t)
			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 1, 1.1)))

			first, err := Collect(ctx, h)
			require.NoError(t, err)
			second, err := Collect(ctx, h)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func Test_OnCallbackError_ShouldStopIteration(t *testing.T) {
	stop := errors.New("stop")
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			h := open(t)
			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 1, 1.1)))
			require.NoError(t, h.Insert(ctx, record("2024-01-01 11:00:00", "EUR", "USD", 1, 1.2)))

			calls := 0
			err := h.FetchAll(ctx, func(conversion.Record) error {
				calls++
				return stop
			})
			assert.True(t, errors.Is(err, stop))
			assert.Equal(t, 1, calls)
		})
	}
}

func Test_OnClear_ShouldEmptyStoreIdempotently(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			h := open(t)
			require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 1, 1.1)))

			require.NoError(t, h.Clear(ctx))
			recs, err := Collect(ctx, h)
			require.NoError(t, err)
			assert.Empty(t, recs)

			require.NoError(t, h.Clear(ctx))
			recs, err = Collect(ctx, h)
			require.NoError(t, err)
			assert.Empty(t, recs)
		})
	}
}

func Test_OnReopen_ShouldKeepSQLiteHistory(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig{driver: "sqlite", dsn: filepath.Join(t.TempDir(), "history.sqlite3")}

	h, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, h.Insert(ctx, record("2024-01-01 10:00:00", "EUR", "USD", 0, 0)))
	require.NoError(t, h.Close())

	h, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer h.Close()

	recs, err := Collect(ctx, h)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0.0, recs[0].Rate)
}

func Test_OnUnknownDriver_ShouldFail(t *testing.T) {
	_, err := Open(context.Background(), testConfig{driver: "mongo"})
	assert.Error(t, err)
}
