package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
)

// OrderResponse 订单DTO
type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderNo         string              `json:"order_no"`
	UserID          uint                `json:"user_id"`
	Items           []OrderItemResponse `json:"order_items"`
	OrderDate       time.Time           `json:"order_date"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
}

// OrderItemResponse 订单明细DTO,Price为下单时的单价
type OrderItemResponse struct {
	ID       uint            `json:"id"`
	BookID   uint            `json:"book_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = toOrderItemResponse(&o.Items[i])
	}
	return &OrderResponse{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Items:           items,
		OrderDate:       o.OrderDate,
		Total:           o.Total.Round(2),
		Status:          o.Status.String(),
		ShippingAddress: o.ShippingAddress,
	}
}

func toOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:       item.ID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price.Round(2),
	}
}
