package book

import (
	"context"

	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// Repository 图书仓储接口
// 设计说明:
// 1. 定义在domain层,由infrastructure层实现(依赖倒置)
// 2. 所有读操作都排除已软删除的图书
type Repository interface {
	// Create 创建图书(同时写入分类关联),ISBN重复返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 整体更新图书并替换分类关联
	Update(ctx context.Context, book *Book) error

	// Delete 软删除,图书不存在或已删除返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 分页列表,等价于条件为空的Search
	List(ctx context.Context, page pagination.Pageable) ([]*Book, int64, error)

	// Search 按条件分页搜索
	Search(ctx context.Context, criteria Criteria, page pagination.Pageable) ([]*Book, int64, error)

	// ListByCategory 分页查询某分类下的图书
	ListByCategory(ctx context.Context, categoryID uint, page pagination.Pageable) ([]*Book, int64, error)

	// ListIDsByCategory 某分类下全部图书的ID
	ListIDsByCategory(ctx context.Context, categoryID uint) ([]uint, error)
}

// Cache 图书详情缓存(Cache-Aside)
// Get未命中时返回(nil, nil)
type Cache interface {
	Get(ctx context.Context, id uint) (*Book, error)
	Set(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id uint) error
}

// NopCache 不做任何缓存
type NopCache struct{}

func (NopCache) Get(context.Context, uint) (*Book, error) { return nil, nil }
func (NopCache) Set(context.Context, *Book) error         { return nil }
func (NopCache) Delete(context.Context, uint) error       { return nil }
