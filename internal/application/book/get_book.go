package book

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/pkg/metrics"
)

// GetBookUseCase 图书详情（Cache-Aside）
// 1. 先读缓存，命中直接返回
// 2. 未命中查数据库并回填缓存
// 3. 缓存不可用时降级为直接查库，不影响请求
type GetBookUseCase struct {
	bookService book.Service
	cache       book.Cache
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service, cache book.Cache) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService, cache: cache}
}

// Execute 查询图书详情
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	cached, err := uc.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.ObserveBookCache("error")
		log.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("读取图书缓存失败")
	case cached != nil:
		metrics.ObserveBookCache("hit")
		return ToBookResponse(cached), nil
	default:
		metrics.ObserveBookCache("miss")
	}

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, b); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("写入图书缓存失败")
	}
	return ToBookResponse(b), nil
}
