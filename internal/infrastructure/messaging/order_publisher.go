// Package messaging 把领域事件投递到RabbitMQ
package messaging

import (
	"context"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/pkg/metrics"
)

// Publisher 消息发布的最小接口,*mq.Publisher实现了它
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// OrderEventPublisher 订单事件发布者
type OrderEventPublisher struct {
	publisher Publisher
}

// NewOrderEventPublisher 创建订单事件发布者
func NewOrderEventPublisher(publisher Publisher) *OrderEventPublisher {
	return &OrderEventPublisher{publisher: publisher}
}

var _ order.EventPublisher = (*OrderEventPublisher)(nil)

func (p *OrderEventPublisher) PublishCreated(ctx context.Context, event order.CreatedEvent) error {
	return p.publish(ctx, order.EventCreated, event)
}

func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	return p.publish(ctx, order.EventStatusChanged, event)
}

func (p *OrderEventPublisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	err := p.publisher.Publish(ctx, routingKey, event)
	metrics.ObservePublish(routingKey, err)
	return err
}
