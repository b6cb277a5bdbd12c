package order

import (
	"context"

	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// Repository 订单仓储接口
type Repository interface {
	// Create 保存订单及明细(回填ID)
	Create(ctx context.Context, order *Order) error

	// FindByID 查询订单(不含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByIDAndUser 查询属于指定用户的订单,否则返回ErrOrderNotFound
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Order, error)

	// ListByUser 分页查询用户的订单(含明细)
	ListByUser(ctx context.Context, userID uint, page pagination.Pageable) ([]*Order, int64, error)

	// ListItems 分页查询订单明细
	ListItems(ctx context.Context, orderID uint, page pagination.Pageable) ([]OrderItem, int64, error)

	// FindItem 查询订单内的某条明细,不属于该订单时返回ErrOrderItemNotFound
	FindItem(ctx context.Context, orderID, itemID uint) (*OrderItem, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, order *Order) error
}
