package redis

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/pkg/circuitbreaker"
)

// GuardedBookCache 带熔断的图书缓存
// Redis连续失败后在熔断期间跳过缓存读写（按未命中处理），请求直接回源数据库。
// Delete不经过熔断器，失效操作总是尝试执行
type GuardedBookCache struct {
	cache   book.Cache
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedBookCache 包装图书缓存
func NewGuardedBookCache(cache book.Cache, breaker *circuitbreaker.CircuitBreaker) *GuardedBookCache {
	return &GuardedBookCache{cache: cache, breaker: breaker}
}

func (g *GuardedBookCache) Get(ctx context.Context, id uint) (*book.Book, error) {
	var b *book.Book
	err := g.breaker.Execute(func() error {
		var err error
		b, err = g.cache.Get(ctx, id)
		return err
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		log.Ctx(ctx).Debug().Uint("book_id", id).Msg("图书缓存熔断中,跳过读取")
		return nil, nil
	}
	return b, err
}

func (g *GuardedBookCache) Set(ctx context.Context, b *book.Book) error {
	err := g.breaker.Execute(func() error {
		return g.cache.Set(ctx, b)
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return nil
	}
	return err
}

func (g *GuardedBookCache) Delete(ctx context.Context, id uint) error {
	return g.cache.Delete(ctx, id)
}
