package category

import (
	"context"

	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// Repository 分类仓储接口
type Repository interface {
	Create(ctx context.Context, category *Category) error

	// FindByID 不存在或已删除返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// CountByIDs 统计ids中存在(未删除)的分类数量,用于校验图书的分类引用
	CountByIDs(ctx context.Context, ids []uint) (int64, error)

	Update(ctx context.Context, category *Category) error

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, page pagination.Pageable) ([]*Category, int64, error)
}
