package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
)

type recordingPublisher struct {
	keys     []string
	messages []interface{}
	err      error
}

func (r *recordingPublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	r.keys = append(r.keys, routingKey)
	r.messages = append(r.messages, message)
	return r.err
}

func TestOrderEventPublisher(t *testing.T) {
	rec := &recordingPublisher{}
	p := NewOrderEventPublisher(rec)
	ctx := context.Background()

	o := &order.Order{ID: 1, OrderNo: "ORD1", UserID: 2, Total: decimal.RequireFromString("9.90"),
		Items: []order.OrderItem{{BookID: 1, Quantity: 1}}}
	require.NoError(t, p.PublishCreated(ctx, order.NewCreatedEvent(o)))
	require.NoError(t, p.PublishStatusChanged(ctx, order.StatusChangedEvent{
		OrderID: 1, From: order.StatusPending, To: order.StatusPaid,
	}))

	assert.Equal(t, []string{order.EventCreated, order.EventStatusChanged}, rec.keys)
	created, ok := rec.messages[0].(order.CreatedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, created.ItemCount)
	assert.Equal(t, "ORD1", created.OrderNo)
}

func TestOrderEventPublisher_Error(t *testing.T) {
	boom := errors.New("channel closed")
	p := NewOrderEventPublisher(&recordingPublisher{err: boom})

	err := p.PublishCreated(context.Background(), order.CreatedEvent{OrderID: 1})
	assert.ErrorIs(t, err, boom)
}
