package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/clients/kafka"
	"max.ks1230/currconv/internal/clients/tg"
	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/converter"
	"max.ks1230/currconv/internal/model/notifier"
	"max.ks1230/currconv/internal/model/rates"
	"max.ks1230/currconv/internal/model/shell"
	"max.ks1230/currconv/internal/model/storage"
	"max.ks1230/currconv/internal/tracing"
)

const breakerOpenFor = 30 * time.Second

type closeFunc func() error

// app owns everything one process run needs. close releases it in reverse order.
type app struct {
	cfg     *config.Service
	shell   *shell.Shell
	closers []closeFunc
}

func newApp(ctx context.Context, configPath string, out io.Writer) (*app, error) {
	a := &app{}
	if err := a.init(ctx, configPath, out); err != nil {
		_ = a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) init(ctx context.Context, configPath string, out io.Writer) (err error) {
	if a.cfg, err = config.New(configPath); err != nil {
		return errors.Wrap(err, "config init failed")
	}

	tracer, err := tracing.Init(a.cfg.Tracing())
	if err != nil {
		return err
	}
	a.closers = append(a.closers, tracer.Close)

	if addr := a.cfg.Metrics().Addr(); addr != "" {
		a.closers = append(a.closers, serveMetrics(addr))
	}

	table, err := rates.Load(a.cfg.Rates().File())
	if err != nil {
		return errors.Wrap(err, "load rates")
	}

	history, err := storage.Open(ctx, a.cfg.Storage())
	if err != nil {
		return errors.Wrap(err, "open history")
	}
	a.closers = append(a.closers, history.Close)

	sink, err := a.alertSink(out)
	if err != nil {
		return err
	}

	a.shell, err = shell.New(ctx, a.cfg.App(), converter.New(table), history, notifier.New(sink))
	return err
}

// alertSink always reaches the terminal and the log. Telegram and Kafka join when configured.
func (a *app) alertSink(out io.Writer) (notifier.Sink, error) {
	fanout := notifier.NewFanout().
		Add("terminal", notifier.NewWriterSink(out)).
		Add("log", notifier.LogSink{})

	if tgCfg := a.cfg.Telegram(); tgCfg.Enabled() {
		client, err := tg.New(tgCfg)
		if err != nil {
			return nil, errors.Wrap(err, "telegram init failed")
		}
		fanout.Add("telegram", notifier.NewBreaker("telegram", notifier.NewTelegramSink(client, tgCfg.ChatID()), breakerOpenFor))
	}

	if kafkaCfg := a.cfg.Kafka(); kafkaCfg.Enabled() {
		producer, err := kafka.NewProducer(kafkaCfg)
		if err != nil {
			return nil, errors.Wrap(err, "kafka init failed")
		}
		a.closers = append(a.closers, func() error {
			producer.Close()
			return nil
		})
		fanout.Add("kafka", notifier.NewBreaker("kafka", notifier.NewKafkaSink(producer), breakerOpenFor))
	}

	logger.Debug("alert sinks ready", zap.Int("count", fanout.Len()))
	return fanout, nil
}

func (a *app) close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
