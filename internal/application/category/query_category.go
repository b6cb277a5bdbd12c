package category

import (
	"context"

	bookapp "github.com/xiebiao/online-bookstore/internal/application/book"
	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/category"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// QueryCategoryUseCase 分类查询：详情、列表、分类下的图书
type QueryCategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
}

// NewQueryCategoryUseCase 创建分类查询用例
func NewQueryCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository) *QueryCategoryUseCase {
	return &QueryCategoryUseCase{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
	}
}

// Get 分类详情
func (uc *QueryCategoryUseCase) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List 分页查询分类
func (uc *QueryCategoryUseCase) List(ctx context.Context, page pagination.Pageable) (*pagination.Result[CategoryResponse], error) {
	categories, total, err := uc.categoryRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = *toCategoryResponse(c)
	}
	return pagination.NewResult(list, total, page), nil
}

// ListBooks 分类下的图书（不含分类ID），分类不存在时返回ErrCategoryNotFound
func (uc *QueryCategoryUseCase) ListBooks(ctx context.Context, id uint, page pagination.Pageable) (*pagination.Result[bookapp.BookSummary], error) {
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	books, total, err := uc.bookRepo.ListByCategory(ctx, id, page)
	if err != nil {
		return nil, err
	}

	list := make([]bookapp.BookSummary, len(books))
	for i, b := range books {
		list[i] = bookapp.ToBookSummary(b)
	}
	return pagination.NewResult(list, total, page), nil
}
