package book

import (
	"context"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
	"github.com/xiebiao/online-bookstore/pkg/tracing"
)

// ListBooksUseCase 图书列表与条件搜索
// 1. 分页参数已在接口层解析为pagination.Pageable（page从0开始）
// 2. 搜索条件全部为空时与普通列表结果一致
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 分页查询全部图书
func (uc *ListBooksUseCase) Execute(ctx context.Context, page pagination.Pageable) (*pagination.Result[BookResponse], error) {
	books, total, err := uc.bookService.ListBooks(ctx, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(toBookResponses(books), total, page), nil
}

// Search 按条件搜索
// 价格无法解析时返回ErrInvalidPriceFilter（400）
func (uc *ListBooksUseCase) Search(ctx context.Context, params book.SearchParams, page pagination.Pageable) (result *pagination.Result[BookResponse], err error) {
	ctx, span := tracing.StartSpan(ctx, "book", "SearchBooks")
	defer func() { tracing.EndSpan(span, err) }()

	books, total, err := uc.bookService.SearchBooks(ctx, params, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(toBookResponses(books), total, page), nil
}
