package storage

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/currconv/internal/entity/conversion"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

// History is the append-only log of past conversions.
type History interface {
	// Insert appends rec atomically.
	Insert(ctx context.Context, rec conversion.Record) error
	// FetchAll streams every record in ascending timestamp order, ties in
	// insertion order. Each call starts over. fn must not call back into the store.
	FetchAll(ctx context.Context, fn func(conversion.Record) error) error
	// Clear removes every record. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
	Close() error
}

type config interface {
	Driver() string
	DSN() string
}

// Open picks the backend named by the config.
func Open(ctx context.Context, cfg config) (History, error) {
	switch cfg.Driver() {
	case driverSQLite, driverPostgres:
		return NewSQLStorage(ctx, cfg)
	case driverMemory:
		return NewInMemStorage(), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver())
	}
}

// Collect reads the whole history into memory.
func Collect(ctx context.Context, h History) ([]conversion.Record, error) {
	res := make([]conversion.Record, 0)
	err := h.FetchAll(ctx, func(rec conversion.Record) error {
		res = append(res, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
