package dto

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required,gt=0"`
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// UpdateQuantityRequest 修改购物车条目数量
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}
