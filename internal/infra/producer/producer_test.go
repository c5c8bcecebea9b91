package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/producer"
	mock_producer "github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/producer/mock"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func testConfig() producer.Config {
	return producer.Config{Brokers: []string{"localhost:9092"}, Topic: "orders", RetryAttempts: 3}
}

func testMessages() []producer.Message {
	return []producer.Message{{
		Key:     []byte("order-1"),
		Value:   []byte(`{"id":"order-1"}`),
		Headers: []producer.Header{{Key: producer.HeaderEventType, Value: []byte("order_created")}},
	}}
}

func TestProduceRetriesTemporaryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	gomock.InOrder(
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable),
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.RequestTimedOut),
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				require.Equal(t, "order-1", string(msgs[0].Key))
				require.Equal(t, producer.HeaderEventType, msgs[0].Headers[0].Key)
				return nil
			}),
	)

	p := producer.NewWithWriter(writer, testConfig())
	require.NoError(t, p.Produce(context.Background(), testMessages()))
}

func TestProduceStopsOnFatalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.TopicAuthorizationFailed).Times(1)

	p := producer.NewWithWriter(writer, testConfig())
	err := p.Produce(context.Background(), testMessages())

	var kafkaErr *producer.KafkaError
	require.ErrorAs(t, err, &kafkaErr)
	require.Equal(t, "orders", kafkaErr.Topic)
	require.ErrorIs(t, err, kafka.TopicAuthorizationFailed)
}

func TestProduceGivesUpAfterRetryAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable).Times(4)

	p := producer.NewWithWriter(writer, testConfig())
	err := p.Produce(context.Background(), testMessages())
	require.ErrorIs(t, err, kafka.LeaderNotAvailable)
}

func TestProduceEmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	p := producer.NewWithWriter(writer, testConfig())
	require.NoError(t, p.Produce(context.Background(), nil))
}

func TestProduceAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	writer.EXPECT().Close().Return(nil).Times(1)

	p := producer.NewWithWriter(writer, testConfig())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	err := p.Produce(context.Background(), testMessages())
	require.ErrorIs(t, err, producer.ErrProducerClosed)
}

func TestProduceCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := producer.NewWithWriter(writer, testConfig())
	err := p.Produce(ctx, testMessages())
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	_, err := producer.New(producer.Config{Topic: "orders"})
	require.ErrorIs(t, err, producer.ErrNoBrokers)

	_, err = producer.New(producer.Config{Brokers: []string{"localhost:9092"}})
	require.ErrorIs(t, err, producer.ErrNoTopic)
}

func TestErrorClassification(t *testing.T) {
	require.True(t, producer.IsTemporaryError(kafka.LeaderNotAvailable))
	require.True(t, producer.IsTemporaryError(producer.NewKafkaError("Produce", "orders", context.DeadlineExceeded)))
	require.False(t, producer.IsTemporaryError(kafka.TopicAuthorizationFailed))
	require.False(t, producer.IsTemporaryError(errors.New("boom")))
	require.True(t, producer.IsFatalError(errors.New("SASL authentication failed")))
	require.False(t, producer.IsFatalError(nil))
}

func TestProduceBacksOffBetweenRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	gomock.InOrder(
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable),
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable),
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
	)

	cfg := testConfig()
	cfg.RetryBackoff = 20 * time.Millisecond
	p := producer.NewWithWriter(writer, cfg)

	start := time.Now()
	require.NoError(t, p.Produce(context.Background(), testMessages()))
	// 20ms + 40ms
	require.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestProduceDeadlineStopsBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockMessageWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(kafka.LeaderNotAvailable).Times(1)

	cfg := testConfig()
	cfg.RetryBackoff = time.Second
	p := producer.NewWithWriter(writer, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Produce(ctx, testMessages())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 500*time.Millisecond)
}
