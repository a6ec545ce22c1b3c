package storage

import (
	"context"
	"sort"

	"max.ks1230/currconv/internal/entity/conversion"
)

// InMemStorage keeps history for the lifetime of the process only.
type InMemStorage struct {
	records []conversion.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{}
}

func (s *InMemStorage) Insert(_ context.Context, rec conversion.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *InMemStorage) FetchAll(ctx context.Context, fn func(conversion.Record) error) error {
	snapshot := make([]conversion.Record, len(s.records))
	copy(snapshot, s.records)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Timestamp < snapshot[j].Timestamp
	})

	for _, rec := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemStorage) Clear(_ context.Context) error {
	s.records = nil
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}
