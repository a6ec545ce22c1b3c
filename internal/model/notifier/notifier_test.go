package notifier

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sinkMock struct {
	mock.Mock
}

func (m *sinkMock) Send(ctx context.Context, alert Alert) error {
	return m.Called(ctx, alert).Error(0)
}

type senderMock struct {
	mock.Mock
}

func (m *senderMock) SendMessage(text string, chatID int64) error {
	return m.Called(text, chatID).Error(0)
}

type producerMock struct {
	mock.Mock
}

func (m *producerMock) ProduceMessage(key, message []byte) error {
	return m.Called(key, message).Error(0)
}

func Test_OnCrossing_ShouldSendFormattedAlert(t *testing.T) {
	sink := &sinkMock{}
	sink.On("Send", mock.Anything, mock.MatchedBy(func(a Alert) bool {
		return a.Title == "Threshold reached" && a.Body == "EUR→USD rate = 1.1000 (≥ 1.1000)"
	})).Return(nil).Once()

	n := New(sink)
	state := NewState()

	alert, err := n.Observe(context.Background(), state, eurUsd, 1.1, 1.1, true)
	require.NoError(t, err)
	require.NotNil(t, alert)

	alert, err = n.Observe(context.Background(), state, eurUsd, 1.1, 1.1, true)
	require.NoError(t, err)
	assert.Nil(t, alert)

	sink.AssertExpectations(t)
}

func Test_OnSinkFailure_ShouldReturnAlertAndError(t *testing.T) {
	sink := &sinkMock{}
	sink.On("Send", mock.Anything, mock.Anything).Return(errors.New("tray unavailable"))

	alert, err := New(sink).Observe(context.Background(), NewState(), eurUsd, 2, 1, true)

	assert.Error(t, err)
	assert.NotNil(t, alert)
}

func Test_OnFanout_ShouldReachEverySinkAndCombineErrors(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")
	failing := &sinkMock{}
	failing.On("Send", mock.Anything, mock.Anything).Return(boom)

	fan := NewFanout().
		Add("console", NewWriterSink(&out)).
		Add("broken", failing).
		Add("log", LogSink{})
	assert.Equal(t, 3, fan.Len())

	err := fan.Send(context.Background(), NewAlert(eurUsd, 1.2, 1.1, time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken: boom")
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, out.String(), "[Threshold reached] EUR→USD rate = 1.2000 (≥ 1.1000)")
}

func Test_OnTelegramSink_ShouldPostToChat(t *testing.T) {
	sender := &senderMock{}
	sender.On("SendMessage", "Threshold reached: EUR→USD rate = 1.2000 (≥ 1.1000)", int64(42)).Return(nil)

	err := NewTelegramSink(sender, 42).Send(context.Background(), NewAlert(eurUsd, 1.2, 1.1, time.Now()))

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func Test_OnKafkaSink_ShouldPublishDecodableAlert(t *testing.T) {
	producer := &producerMock{}
	var payload []byte
	producer.On("ProduceMessage", []byte("EUR->USD"), mock.Anything).
		Run(func(args mock.Arguments) { payload = args.Get(1).([]byte) }).
		Return(nil)

	alert := NewAlert(eurUsd, 1.2, 1.1, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, NewKafkaSink(producer).Send(context.Background(), alert))

	decoded, err := DecodeAlert(payload)
	require.NoError(t, err)
	assert.Equal(t, alert.ID.String(), decoded["id"])
	assert.Equal(t, "EUR", decoded["from"])
	assert.Equal(t, "USD", decoded["to"])
	assert.Equal(t, 1.2, decoded["rate"])
	assert.Equal(t, "2024-01-01T10:00:00Z", decoded["at"])
}

func Test_OnRepeatedFailures_BreakerShouldOpen(t *testing.T) {
	sink := &sinkMock{}
	sink.On("Send", mock.Anything, mock.Anything).Return(errors.New("down")).Times(breakerFailures)

	b := NewBreaker("telegram", sink, time.Minute)
	alert := NewAlert(eurUsd, 1.2, 1.1, time.Now())
	for i := 0; i < breakerFailures; i++ {
		assert.Error(t, b.Send(context.Background(), alert))
	}

	// open: the sink is not called any more
	assert.Error(t, b.Send(context.Background(), alert))
	sink.AssertNumberOfCalls(t, "Send", breakerFailures)
}
