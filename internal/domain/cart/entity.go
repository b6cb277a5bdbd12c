package cart

import (
	"time"
)

// ShoppingCart 购物车(聚合根)
// 设计说明:
// 1. 每个用户有且只有一个购物车,注册时创建
// 2. 同一本书在购物车中只能出现一次,数量通过修改条目调整
type ShoppingCart struct {
	ID     uint
	UserID uint
	Items  []CartItem
}

// CartItem 购物车条目
// BookTitle是读取时关联出的冗余字段,仅用于展示
type CartItem struct {
	ID             uint
	ShoppingCartID uint
	BookID         uint
	BookTitle      string
	Quantity       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCartItem 创建购物车条目
// 业务规则:数量不能为负数
func NewCartItem(cartID, bookID uint, quantity int) (*CartItem, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now()
	return &CartItem{
		ShoppingCartID: cartID,
		BookID:         bookID,
		Quantity:       quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ChangeQuantity 修改数量
func (i *CartItem) ChangeQuantity(quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// Contains 判断购物车中是否已有该图书
func (c *ShoppingCart) Contains(bookID uint) bool {
	for _, item := range c.Items {
		if item.BookID == bookID {
			return true
		}
	}
	return false
}

// IsEmpty 购物车是否为空
func (c *ShoppingCart) IsEmpty() bool {
	return len(c.Items) == 0
}
