package category

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/category"
)

// CreateCategoryUseCase 新增分类（管理员）
// 名称唯一由数据库唯一索引保证，冲突返回ErrNameDuplicate
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewCreateCategoryUseCase 创建新增分类用例
func NewCreateCategoryUseCase(categoryRepo category.Repository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CategoryInput) (*CategoryResponse, error) {
	c, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// UpdateCategoryUseCase 修改分类（管理员）
type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewUpdateCategoryUseCase 创建修改分类用例
func NewUpdateCategoryUseCase(categoryRepo category.Repository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, id uint, req CategoryInput) (*CategoryResponse, error) {
	c, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// DeleteCategoryUseCase 软删除分类（管理员）
// 图书详情缓存里带有分类ID，删除后同时失效该分类下图书的缓存
type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
	cache        book.Cache
}

// NewDeleteCategoryUseCase 创建删除分类用例
func NewDeleteCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository, cache book.Cache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, bookRepo: bookRepo, cache: cache}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	bookIDs, err := uc.bookRepo.ListIDsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, bookID := range bookIDs {
		if err := uc.cache.Delete(ctx, bookID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Uint("book_id", bookID).Msg("删除图书缓存失败")
		}
	}
	return nil
}
