package notifier

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

// Sink delivers an alert somewhere a human will see it.
type Sink interface {
	Send(ctx context.Context, alert Alert) error
}

// Notifier evaluates samples against a caller-owned State and delivers alerts to a sink.
type Notifier struct {
	sink Sink
	now  func() time.Time
}

func New(sink Sink) *Notifier {
	return &Notifier{
		sink: sink,
		now:  time.Now,
	}
}

// Observe returns the alert that was raised, or nil. A delivery failure is
// returned next to the alert: the alert still happened.
func (n *Notifier) Observe(
	ctx context.Context,
	state *State,
	pair currency.Pair,
	rate, threshold float64,
	enabled bool,
) (*Alert, error) {
	if !Evaluate(state, pair, rate, threshold, enabled) {
		return nil, nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "sendAlert")
	defer span.Finish()
	span.SetTag("pair", pair.String())

	alert := NewAlert(pair, rate, threshold, n.now())
	alertsRaised.WithLabelValues(pair.String()).Inc()
	logger.Info("threshold crossed",
		zap.String("pair", pair.String()),
		zap.Float64("rate", rate),
		zap.Float64("threshold", threshold),
	)

	if err := n.sink.Send(ctx, alert); err != nil {
		ext.Error.Set(span, true)
		return &alert, err
	}
	return &alert, nil
}
