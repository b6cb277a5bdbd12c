package order

import (
	"context"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// QueryOrderUseCase 查询当前用户的订单与明细
// 订单不属于当前用户时一律返回ErrOrderNotFound,不暴露订单是否存在
type QueryOrderUseCase struct {
	orderRepo order.Repository
}

// NewQueryOrderUseCase 创建订单查询用例
func NewQueryOrderUseCase(orderRepo order.Repository) *QueryOrderUseCase {
	return &QueryOrderUseCase{orderRepo: orderRepo}
}

// List 订单历史
func (uc *QueryOrderUseCase) List(ctx context.Context, userID uint, page pagination.Pageable) (*pagination.Result[OrderResponse], error) {
	orders, total, err := uc.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	list := make([]OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = *toOrderResponse(o)
	}
	return pagination.NewResult(list, total, page), nil
}

// ListItems 订单明细分页
func (uc *QueryOrderUseCase) ListItems(ctx context.Context, userID, orderID uint, page pagination.Pageable) (*pagination.Result[OrderItemResponse], error) {
	if _, err := uc.orderRepo.FindByIDAndUser(ctx, orderID, userID); err != nil {
		return nil, err
	}

	items, total, err := uc.orderRepo.ListItems(ctx, orderID, page)
	if err != nil {
		return nil, err
	}

	list := make([]OrderItemResponse, len(items))
	for i := range items {
		list[i] = toOrderItemResponse(&items[i])
	}
	return pagination.NewResult(list, total, page), nil
}

// GetItem 订单中的单条明细
func (uc *QueryOrderUseCase) GetItem(ctx context.Context, userID, orderID, itemID uint) (*OrderItemResponse, error) {
	if _, err := uc.orderRepo.FindByIDAndUser(ctx, orderID, userID); err != nil {
		return nil, err
	}

	item, err := uc.orderRepo.FindItem(ctx, orderID, itemID)
	if err != nil {
		return nil, err
	}
	resp := toOrderItemResponse(item)
	return &resp, nil
}
