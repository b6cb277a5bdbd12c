package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// 事件的routing key
const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status_changed"
)

// CreatedEvent 下单成功后发布
type CreatedEvent struct {
	OrderID    uint            `json:"order_id"`
	OrderNo    string          `json:"order_no"`
	UserID     uint            `json:"user_id"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StatusChangedEvent 订单状态变更后发布
type StatusChangedEvent struct {
	OrderID    uint      `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     uint      `json:"user_id"`
	From       Status    `json:"from"`
	To         Status    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 订单事件发布
// 调用方在事务提交之后发布,发布失败不回滚订单
type EventPublisher interface {
	PublishCreated(ctx context.Context, event CreatedEvent) error
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}

// NopPublisher 未启用消息队列时使用,事件直接丢弃
type NopPublisher struct{}

func (NopPublisher) PublishCreated(context.Context, CreatedEvent) error             { return nil }
func (NopPublisher) PublishStatusChanged(context.Context, StatusChangedEvent) error { return nil }

// NewCreatedEvent 由订单构造下单事件
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		Total:      o.Total,
		ItemCount:  len(o.Items),
		OccurredAt: time.Now(),
	}
}
