package order

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/pkg/metrics"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// allItems 不分页,按明细ID升序
var allItems = pagination.Pageable{Order: []pagination.Order{{Column: "id"}}}

// UpdateOrderStatusUseCase 修改订单状态(管理员)
// 状态流转规则见order.Order.TransitionTo
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
	publisher order.EventPublisher
}

// NewUpdateOrderStatusUseCase 创建状态修改用例
func NewUpdateOrderStatusUseCase(orderRepo order.Repository, publisher order.EventPublisher) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo, publisher: publisher}
}

// Execute 执行状态修改,返回修改后的订单(含明细)
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID uint, status string) (*OrderResponse, error) {
	target, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := o.Status
	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}
	metrics.ObserveStatusChange(target.String())

	log.Ctx(ctx).Info().
		Uint("order_id", o.ID).
		Str("from", from.String()).
		Str("to", target.String()).
		Msg("订单状态已更新")

	event := order.StatusChangedEvent{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		From:       from,
		To:         target,
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.PublishStatusChanged(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("order_id", o.ID).Msg("发布状态变更事件失败")
	}

	items, _, err := uc.orderRepo.ListItems(ctx, o.ID, allItems)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return toOrderResponse(o), nil
}
