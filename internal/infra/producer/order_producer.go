package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
)

type OrderEventType string

const (
	OrderEventCreated     OrderEventType = "order_created"
	OrderEventPaidToggled OrderEventType = "order_paid_toggled"

	HeaderEventType = "event_type"
	HeaderStoreID   = "store_id"
)

//go:generate mockgen -source=order_producer.go -destination=mock/mock_order_producer.go -package=mock_producer

// OrderEventPublisher 訂單在 commit 之後才發事件
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *model.Order) error
	PublishOrderPaidToggled(ctx context.Context, order *model.Order) error
}

type OrderProducer struct {
	producer Producer
}

func NewOrderProducer(producer Producer) *OrderProducer {
	if producer == nil {
		panic("NewOrderProducer: producer cannot be nil")
	}
	return &OrderProducer{producer: producer}
}

func (p *OrderProducer) PublishOrderCreated(ctx context.Context, order *model.Order) error {
	return p.publish(ctx, OrderEventCreated, order)
}

func (p *OrderProducer) PublishOrderPaidToggled(ctx context.Context, order *model.Order) error {
	return p.publish(ctx, OrderEventPaidToggled, order)
}

func (p *OrderProducer) publish(ctx context.Context, event OrderEventType, order *model.Order) error {
	msg, err := convertToMessage(event, order)
	if err != nil {
		return err
	}
	return p.producer.Produce(ctx, []Message{msg})
}

func convertToMessage(event OrderEventType, order *model.Order) (Message, error) {
	value, err := json.Marshal(order)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Key:   []byte(order.ID),
		Value: value,
		Headers: []Header{
			{Key: HeaderEventType, Value: []byte(event)},
			{Key: HeaderStoreID, Value: []byte(order.StoreID)},
		},
		Time: time.Now().UTC(),
	}, nil
}

// NoopPublisher 沒有設定 kafka broker 時使用
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(context.Context, *model.Order) error     { return nil }
func (NoopPublisher) PublishOrderPaidToggled(context.Context, *model.Order) error { return nil }

var (
	_ OrderEventPublisher = (*OrderProducer)(nil)
	_ OrderEventPublisher = NoopPublisher{}
)
