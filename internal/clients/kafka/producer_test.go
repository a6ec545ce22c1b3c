package kafka

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
)

func Test_OnProduceMessage_ShouldSendValue(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		assert.Equal(t, "payload", string(val))
		return nil
	})

	p := NewProducerWith(sp, "rate-alerts")
	assert.NoError(t, p.ProduceMessage([]byte("EUR->USD"), []byte("payload")))
	p.Close()
}

func Test_OnBrokerFailure_ShouldReturnError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerWith(sp, "rate-alerts")
	assert.Error(t, p.ProduceMessage(nil, []byte("payload")))
	p.Close()
}
