package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/online-bookstore/internal/domain/order"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// orderRepository 订单仓储实现
// 订单与明细是一对多关系，创建订单时GORM会自动插入明细
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填ID
	o.ID = model.ID
	o.UpdatedAt = model.UpdatedAt
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindByIDAndUser 其他用户的订单同样视为不存在
func (r *orderRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*order.Order, error) {
	var model OrderModel
	err := r.getDB(ctx).Where("id = ? AND user_id = ?", id, userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint, page pagination.Pageable) ([]*order.Order, int64, error) {
	query := r.getDB(ctx).Model(&OrderModel{}).Where("user_id = ?", userID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计订单数量失败")
	}

	var models []OrderModel
	if err := query.Scopes(paginate(page)).Preload("Items", orderByID).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID uint, page pagination.Pageable) ([]order.OrderItem, int64, error) {
	query := r.getDB(ctx).Model(&OrderItemModel{}).Where("order_id = ?", orderID).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计订单明细失败")
	}

	var models []OrderItemModel
	if err := query.Scopes(paginate(page)).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单明细失败")
	}

	items := make([]order.OrderItem, len(models))
	for i := range models {
		items[i] = toOrderItemEntity(&models[i])
	}
	return items, total, nil
}

func (r *orderRepository) FindItem(ctx context.Context, orderID, itemID uint) (*order.OrderItem, error) {
	var model OrderItemModel
	err := r.getDB(ctx).Where("id = ? AND order_id = ?", itemID, orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}
	item := toOrderItemEntity(&model)
	return &item, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	result := r.getDB(ctx).Model(&OrderModel{ID: o.ID}).Update("status", string(o.Status))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单状态失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// =========================================
// 模型转换
// =========================================

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderModel{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Total:           o.Total,
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		CreatedAt:       o.OrderDate,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderEntity(m *OrderModel) *order.Order {
	items := make([]order.OrderItem, len(m.Items))
	for i := range m.Items {
		items[i] = toOrderItemEntity(&m.Items[i])
	}

	return &order.Order{
		ID:              m.ID,
		OrderNo:         m.OrderNo,
		UserID:          m.UserID,
		Status:          order.Status(m.Status),
		Total:           m.Total,
		OrderDate:       m.OrderDate,
		ShippingAddress: m.ShippingAddress,
		Items:           items,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderItemEntity(m *OrderItemModel) order.OrderItem {
	return order.OrderItem{
		ID:       m.ID,
		OrderID:  m.OrderID,
		BookID:   m.BookID,
		Quantity: m.Quantity,
		Price:    m.Price,
	}
}

func (r *orderRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}
