package book

import (
	"context"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/category"
)

// CreateBookUseCase 新增图书用例（管理员）
// 1. 构造实体时完成字段校验（书名、作者、ISBN、价格）
// 2. 引用的分类必须全部存在
// 3. ISBN唯一性由领域服务检查，数据库唯一索引兜底
type CreateBookUseCase struct {
	bookService  book.Service
	categoryRepo category.Repository
}

// NewCreateBookUseCase 创建新增图书用例
func NewCreateBookUseCase(bookService book.Service, categoryRepo category.Repository) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService:  bookService,
		categoryRepo: categoryRepo,
	}
}

// Execute 执行新增
func (uc *CreateBookUseCase) Execute(ctx context.Context, req BookInput) (*BookResponse, error) {
	b, err := req.toEntity()
	if err != nil {
		return nil, err
	}

	if err := ensureCategoriesExist(ctx, uc.categoryRepo, b.CategoryIDs); err != nil {
		return nil, err
	}

	if err := uc.bookService.CreateBook(ctx, b); err != nil {
		return nil, err
	}
	return ToBookResponse(b), nil
}

// ensureCategoriesExist 所有分类ID都必须指向未删除的分类
func ensureCategoriesExist(ctx context.Context, repo category.Repository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := repo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return category.ErrCategoryNotFound
	}
	return nil
}
