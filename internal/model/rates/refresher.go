package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

//go:generate minimock -i max.ks1230/currconv/internal/model/rates.ratesProvider -o ./mock/rates_provider_mock.go -n RatesProviderMock

type ratesProvider interface {
	GetRates(ctx context.Context, base string, relatives []string) (map[string]float64, error)
}

// Refresher pulls current rates for every currency of a table and stores a new snapshot.
type Refresher struct {
	provider ratesProvider
	path     string
	now      func() time.Time
}

func NewRefresher(provider ratesProvider, path string) (*Refresher, error) {
	if path == "" {
		return nil, errors.New("rates file is not configured")
	}
	return &Refresher{
		provider: provider,
		path:     path,
		now:      time.Now,
	}, nil
}

// Refresh returns the new table. Currencies missing from the answer keep their old rate.
func (r *Refresher) Refresh(ctx context.Context, current *Table) (*Table, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "refreshRates")
	defer span.Finish()

	logger.Info("Pulling current rates...")

	relatives := current.relativesOf(currency.EUR)
	pulled, err := r.provider.GetRates(ctx, currency.EUR, relatives)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "cannot get rates")
	}

	merged := make(map[string]float64, len(relatives))
	for _, code := range relatives {
		rate, ok := pulled[code]
		if !ok || rate <= 0 {
			logger.Warn("rate missing from provider, keeping previous", zap.String("rate", code))
			rate = current.rates[code]
		}
		merged[code] = rate
	}

	table := NewTable(r.now(), merged)
	if err = Save(r.path, table); err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "cannot save rates")
	}

	logger.Info("Successfully pulled current rates", zap.Int("count", len(merged)), zap.String("path", r.path))
	return table, nil
}
