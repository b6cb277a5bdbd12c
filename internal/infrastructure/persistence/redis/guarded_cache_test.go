package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/pkg/circuitbreaker"
)

// flakyCache 可以切换为故障状态的缓存
type flakyCache struct {
	err     error
	gets    int
	sets    int
	deletes int
}

func (c *flakyCache) Get(context.Context, uint) (*book.Book, error) {
	c.gets++
	return nil, c.err
}

func (c *flakyCache) Set(context.Context, *book.Book) error {
	c.sets++
	return c.err
}

func (c *flakyCache) Delete(context.Context, uint) error {
	c.deletes++
	return c.err
}

func TestGuardedBookCache(t *testing.T) {
	inner := &flakyCache{err: errors.New("connection refused")}
	breaker := circuitbreaker.NewCircuitBreaker("book-cache", circuitbreaker.Config{
		MaxFailures: 2,
		Timeout:     time.Hour,
	})
	cache := NewGuardedBookCache(inner, breaker)
	ctx := context.Background()

	// 熔断前错误原样返回
	_, err := cache.Get(ctx, 1)
	assert.Error(t, err)
	assert.Error(t, cache.Set(ctx, &book.Book{ID: 1}))
	require.Equal(t, circuitbreaker.StateOpen, breaker.State())

	// 熔断后不再访问Redis，按未命中处理
	got, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.Set(ctx, &book.Book{ID: 1}))
	assert.Equal(t, 1, inner.gets)
	assert.Equal(t, 1, inner.sets)

	// 失效操作不受熔断影响
	assert.Error(t, cache.Delete(ctx, 1))
	assert.Equal(t, 1, inner.deletes)
}
