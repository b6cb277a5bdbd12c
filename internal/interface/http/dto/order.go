package dto

// CreateOrderRequest 下单请求,shipping_address为空时使用注册地址
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"max=512"`
}

// UpdateOrderStatusRequest 修改订单状态
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,notblank" example:"PAID"`
}
