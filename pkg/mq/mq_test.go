package mq

import (
	"context"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

func TestNewPublishing(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	msg, err := newPublishing(testEvent{OrderID: 1, Status: "PENDING"}, now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, now, msg.Timestamp)
	assert.JSONEq(t, `{"order_id":1,"status":"PENDING"}`, string(msg.Body))

	_, err = newPublishing(make(chan int), now)
	assert.Error(t, err)
}

// 需要本地RabbitMQ（BOOKSTORE_TEST_AMQP_URL），未设置时跳过
func TestPublisher_Publish(t *testing.T) {
	url := os.Getenv("BOOKSTORE_TEST_AMQP_URL")
	if url == "" {
		t.Skip("未设置BOOKSTORE_TEST_AMQP_URL")
	}

	publisher, err := NewPublisher(url, "bookstore.test.events", "topic")
	require.NoError(t, err)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, publisher.Publish(ctx, "order.created", testEvent{OrderID: 123, Status: "PENDING"}))
}
