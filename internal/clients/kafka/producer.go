package kafka

import (
	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	AlertsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create kafka producer")
	}
	return NewProducerWith(producer, cfg.AlertsTopic()), nil
}

// NewProducerWith wraps an existing sync producer.
func NewProducerWith(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) ProduceMessage(key, message []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return errors.Wrapf(err, "produce to %s", p.topic)
	}
	logger.Debug("message produced",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
