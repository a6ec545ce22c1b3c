package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

// WriterSink prints alerts to a terminal.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Send(_ context.Context, alert Alert) error {
	_, err := fmt.Fprintf(s.w, "\a[%s] %s\n", alert.Title, alert.Body)
	return err
}

type LogSink struct{}

func (LogSink) Send(_ context.Context, alert Alert) error {
	logger.Warn(alert.Title,
		zap.String("id", alert.ID.String()),
		zap.String("body", alert.Body),
	)
	return nil
}

type namedSink struct {
	name string
	sink Sink
}

// Fanout hands every alert to all of its sinks, even when some fail.
type Fanout struct {
	sinks []namedSink
}

func NewFanout() *Fanout {
	return &Fanout{}
}

func (f *Fanout) Add(name string, sink Sink) *Fanout {
	f.sinks = append(f.sinks, namedSink{name: name, sink: sink})
	return f
}

func (f *Fanout) Len() int {
	return len(f.sinks)
}

func (f *Fanout) Send(ctx context.Context, alert Alert) error {
	var err error
	for _, s := range f.sinks {
		if sendErr := s.sink.Send(ctx, alert); sendErr != nil {
			sinkFailures.WithLabelValues(s.name).Inc()
			logger.Error("alert delivery failed", zap.String("sink", s.name), zap.Error(sendErr))
			err = multierr.Append(err, errors.Wrap(sendErr, s.name))
		}
	}
	return err
}
