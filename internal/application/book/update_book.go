package book

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/category"
)

// UpdateBookUseCase 整体更新图书（PUT语义，管理员）
// 更新成功后删除详情缓存，下次读取时回源
type UpdateBookUseCase struct {
	bookService  book.Service
	categoryRepo category.Repository
	cache        book.Cache
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(bookService book.Service, categoryRepo category.Repository, cache book.Cache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:  bookService,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req BookInput) (*BookResponse, error) {
	changes, err := req.toEntity()
	if err != nil {
		return nil, err
	}

	if err := ensureCategoriesExist(ctx, uc.categoryRepo, changes.CategoryIDs); err != nil {
		return nil, err
	}

	updated, err := uc.bookService.UpdateBook(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, id)
	return ToBookResponse(updated), nil
}

// DeleteBookUseCase 软删除图书（管理员）
type DeleteBookUseCase struct {
	bookService book.Service
	cache       book.Cache
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookService book.Service, cache book.Cache) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, cache: cache}
}

// Execute 执行删除，图书不存在或已删除时返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, id)
	return nil
}

// invalidate 删除缓存失败只记录日志，缓存会在TTL后过期
func invalidate(ctx context.Context, cache book.Cache, id uint) {
	if err := cache.Delete(ctx, id); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("删除图书缓存失败")
	}
}
