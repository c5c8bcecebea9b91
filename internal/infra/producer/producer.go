package producer

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=producer.go -destination=mock/mock_producer.go -package=mock_producer

// Producer 同步寫入訊息到 kafka
type Producer interface {
	Produce(ctx context.Context, msgs []Message) error
	Close() error
}

// MessageWriter 是 *kafka.Writer 用到的部分, 測試時換成 mock
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers       []string
	Topic         string
	RetryAttempts int
	RetryBackoff  time.Duration // 第一次重試前的等待, 之後每次加倍, 0 表示不等待
	BatchTimeout  time.Duration
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return ErrNoBrokers
	}
	if c.Topic == "" {
		return ErrNoTopic
	}
	return nil
}

type kafkaProducer struct {
	writer MessageWriter
	cfg    Config
	closed atomic.Bool
}

// New 建立 kafka.Writer 版本的 producer
func New(cfg Config) (Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = 100 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  1,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),
		Compression: kafka.Snappy,
	}

	return NewWithWriter(writer, cfg), nil
}

// NewWithWriter 以既有 writer 建立 producer
func NewWithWriter(writer MessageWriter, cfg Config) Producer {
	return &kafkaProducer{
		writer: writer,
		cfg:    cfg,
	}
}

// Produce 同步發送, 會 block 到所有訊息寫入或重試用完
func (p *kafkaProducer) Produce(ctx context.Context, msgs []Message) error {
	if p.closed.Load() {
		return NewKafkaError("Produce", p.cfg.Topic, ErrProducerClosed)
	}
	if len(msgs) == 0 {
		return nil
	}

	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, msg := range msgs {
		kafkaMsgs[i] = msg.ToKafkaMessage()
	}

	var err error
	backoff := p.cfg.RetryBackoff
	for attempt := 0; attempt <= p.cfg.RetryAttempts; attempt++ {
		if attempt > 0 && backoff > 0 {
			select {
			case <-ctx.Done():
				return NewKafkaError("Produce", p.cfg.Topic, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		if ctx.Err() != nil {
			return NewKafkaError("Produce", p.cfg.Topic, ctx.Err())
		}
		err = p.writer.WriteMessages(ctx, kafkaMsgs...)
		if err == nil {
			return nil
		}
		if !IsTemporaryError(err) {
			break
		}
	}

	return NewKafkaError("Produce", p.cfg.Topic, err)
}

func (p *kafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
