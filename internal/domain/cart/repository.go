package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// Create 为用户创建空购物车(注册时调用)
	Create(ctx context.Context, cart *ShoppingCart) error

	// FindByUserID 查询用户的购物车及条目(条目带书名)
	FindByUserID(ctx context.Context, userID uint) (*ShoppingCart, error)

	// AddItem 添加条目,同一购物车内图书重复时返回ErrCartItemDuplicate
	AddItem(ctx context.Context, item *CartItem) error

	// FindItem 查询购物车内的条目,不属于该购物车时返回ErrCartItemNotFound
	FindItem(ctx context.Context, cartID, itemID uint) (*CartItem, error)

	UpdateItem(ctx context.Context, item *CartItem) error

	DeleteItem(ctx context.Context, cartID, itemID uint) error

	// Clear 清空购物车(下单后调用)
	Clear(ctx context.Context, cartID uint) error
}
