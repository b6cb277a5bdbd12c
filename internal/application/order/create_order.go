package order

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/cart"
	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/pkg/metrics"
	"github.com/xiebiao/online-bookstore/pkg/tracing"
)

// CreateOrderUseCase 用购物车下单
// 核心流程(同一事务内):
//  1. 读取购物车,为空时返回ErrEmptyCart
//  2. 按当前图书价格生成明细(价格快照)
//  3. 保存订单与明细,状态为PENDING
//  4. 清空购物车
//
// 任一步失败整体回滚,购物车保持原样
type CreateOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
	txManager *gormdb.TxManager
	publisher order.EventPublisher
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	txManager *gormdb.TxManager,
	publisher order.EventPublisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID          uint   // 从JWT中提取
	ShippingAddress string // 为空时使用用户注册时填写的地址
}

// Execute 执行下单
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (resp *OrderResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "order", "CreateOrder")
	start := time.Now()
	defer func() {
		metrics.ObserveOrderCreation(time.Since(start).Seconds(), err)
		tracing.EndSpan(span, err)
	}()

	var created *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		sc, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if sc.IsEmpty() {
			return order.ErrEmptyCart
		}

		items, err := uc.snapshotItems(txCtx, sc.Items)
		if err != nil {
			return err
		}

		address, err := uc.resolveAddress(txCtx, req)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(order.GenerateOrderNo(), req.UserID, address, items)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		if err := uc.cartRepo.Clear(txCtx, sc.ID); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint("order_id", created.ID).
		Str("order_no", created.OrderNo).
		Str("total", created.Total.StringFixed(2)).
		Msg("下单成功")

	// 事务已提交,事件发布失败只记日志
	if err := uc.publisher.PublishCreated(ctx, order.NewCreatedEvent(created)); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("order_id", created.ID).Msg("发布下单事件失败")
	}

	return toOrderResponse(created), nil
}

// snapshotItems 以图书当前价格生成订单明细
func (uc *CreateOrderUseCase) snapshotItems(ctx context.Context, cartItems []cart.CartItem) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		b, err := uc.bookRepo.FindByID(ctx, ci.BookID)
		if err != nil {
			return nil, err
		}
		items = append(items, order.OrderItem{
			BookID:   ci.BookID,
			Quantity: ci.Quantity,
			Price:    b.Price,
		})
	}
	return items, nil
}

func (uc *CreateOrderUseCase) resolveAddress(ctx context.Context, req CreateOrderRequest) (string, error) {
	if strings.TrimSpace(req.ShippingAddress) != "" {
		return req.ShippingAddress, nil
	}
	u, err := uc.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	return u.ShippingAddress, nil
}
