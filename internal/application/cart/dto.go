package cart

import (
	"github.com/xiebiao/online-bookstore/internal/domain/cart"
)

// CartResponse 购物车DTO
type CartResponse struct {
	ID     uint           `json:"id"`
	UserID uint           `json:"user_id"`
	Items  []CartItemView `json:"cart_items"`
}

// CartItemView 购物车条目DTO
type CartItemView struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
}

// QuantityResponse 修改数量后的返回
type QuantityResponse struct {
	Quantity int `json:"quantity"`
}

func toCartResponse(c *cart.ShoppingCart) *CartResponse {
	items := make([]CartItemView, len(c.Items))
	for i := range c.Items {
		items[i] = toCartItemView(&c.Items[i])
	}
	return &CartResponse{ID: c.ID, UserID: c.UserID, Items: items}
}

func toCartItemView(item *cart.CartItem) CartItemView {
	return CartItemView{
		ID:        item.ID,
		BookID:    item.BookID,
		BookTitle: item.BookTitle,
		Quantity:  item.Quantity,
	}
}
