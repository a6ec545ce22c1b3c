package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/conversion"
	"max.ks1230/currconv/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const table = "conversions"

var columns = []string{"ts", "from_cur", "to_cur", "amount", "result", "rate"}

var ddl = map[string]string{
	driverSQLite: `
	CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL,
		from_cur TEXT NOT NULL,
		to_cur TEXT NOT NULL,
		amount REAL NOT NULL,
		result REAL NOT NULL,
		rate REAL NOT NULL
	)`,
	driverPostgres: `
	CREATE TABLE IF NOT EXISTS conversions (
		id SERIAL PRIMARY KEY,
		ts TEXT NOT NULL,
		from_cur TEXT NOT NULL,
		to_cur TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		result DOUBLE PRECISION NOT NULL,
		rate DOUBLE PRECISION NOT NULL
	)`,
}

type SQLStorage struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

func NewSQLStorage(ctx context.Context, config config) (*SQLStorage, error) {
	schema, ok := ddl[config.Driver()]
	if !ok {
		return nil, errors.Errorf("driver %q is not an sql driver", config.Driver())
	}

	db, err := sql.Open(config.Driver(), config.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}

	var placeholders sq.PlaceholderFormat = sq.Dollar
	if config.Driver() == driverSQLite {
		// the file has a single owner, one connection keeps writes serialized
		db.SetMaxOpenConns(1)
		placeholders = sq.Question
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot create schema")
	}

	logger.Info("history storage ready", zap.String("driver", config.Driver()))
	return &SQLStorage{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(placeholders),
	}, nil
}

func (s *SQLStorage) Insert(ctx context.Context, rec conversion.Record) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "insertConversion")
	defer span.Finish()

	query := s.psql.Insert(table).
		Columns(columns...).
		Values(rec.Timestamp, rec.From, rec.To, rec.Amount, rec.Result, rec.Rate)

	if _, err := query.RunWith(s.db).ExecContext(ctx); err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "insert conversion")
	}
	return nil
}

func (s *SQLStorage) FetchAll(ctx context.Context, fn func(conversion.Record) error) error {
	query := s.psql.Select(columns...).
		From(table).
		OrderBy("ts ASC", "id ASC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch conversions")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	for rows.Next() {
		var rec conversion.Record
		err = rows.Scan(&rec.Timestamp, &rec.From, &rec.To, &rec.Amount, &rec.Result, &rec.Rate)
		if err != nil {
			return errors.Wrap(err, "fetch conversions")
		}
		if err = fn(rec); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "fetch conversions")
}

func (s *SQLStorage) Clear(ctx context.Context) error {
	_, err := s.psql.Delete(table).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "clear conversions")
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
