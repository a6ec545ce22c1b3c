package notifier

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/currconv/internal/logger"
)

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

// TelegramSink posts alerts to one chat.
type TelegramSink struct {
	client messageSender
	chatID int64
}

func NewTelegramSink(client messageSender, chatID int64) *TelegramSink {
	return &TelegramSink{client: client, chatID: chatID}
}

func (s *TelegramSink) Send(_ context.Context, alert Alert) error {
	return s.client.SendMessage(alert.Text(), s.chatID)
}

type messageProducer interface {
	ProduceMessage(key, message []byte) error
}

// KafkaSink publishes alerts keyed by pair so that a pair's alerts stay ordered.
type KafkaSink struct {
	producer messageProducer
}

func NewKafkaSink(producer messageProducer) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Send(_ context.Context, alert Alert) error {
	payload, err := EncodeAlert(alert)
	if err != nil {
		return err
	}
	return s.producer.ProduceMessage([]byte(alert.Pair.String()), payload)
}

// EncodeAlert serializes an alert as a protobuf Struct.
func EncodeAlert(alert Alert) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"id":        alert.ID.String(),
		"title":     alert.Title,
		"body":      alert.Body,
		"from":      alert.Pair.From,
		"to":        alert.Pair.To,
		"rate":      alert.Rate,
		"threshold": alert.Threshold,
		"at":        alert.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "build alert message")
	}
	raw, err := proto.Marshal(msg)
	return raw, errors.Wrap(err, "marshal alert message")
}

// DecodeAlert is the inverse of EncodeAlert, for consumers of the topic.
func DecodeAlert(raw []byte) (map[string]interface{}, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(err, "unmarshal alert message")
	}
	return msg.AsMap(), nil
}

const breakerFailures = 3

// Breaker stops calling a remote sink that keeps failing, so that a dead
// chat or broker does not slow every conversion down.
type Breaker struct {
	sink Sink
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(name string, sink Sink, openFor time.Duration) *Breaker {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("alert sink breaker state changed",
				zap.String("sink", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &Breaker{sink: sink, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *Breaker) Send(ctx context.Context, alert Alert) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.sink.Send(ctx, alert)
	})
	return err
}
