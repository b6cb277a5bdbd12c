package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status 订单状态,接口与数据库中均以字符串存储
type Status string

const (
	StatusPending   Status = "PENDING"   // 待支付
	StatusPaid      Status = "PAID"      // 已支付
	StatusShipped   Status = "SHIPPED"   // 已发货
	StatusCompleted Status = "COMPLETED" // 已完成
	StatusCancelled Status = "CANCELLED" // 已取消
)

// transitions 合法的状态流转
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},    // 待支付→已支付/已取消
	StatusPaid:      {StatusShipped, StatusCancelled}, // 已支付→已发货/已取消(退款)
	StatusShipped:   {StatusCompleted},                // 已发货→已完成
	StatusCompleted: {},                               // 终态
	StatusCancelled: {},                               // 终态
}

// ParseStatus 解析状态字符串(不区分大小写)
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := transitions[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

// Order 订单聚合根,OrderItem为其子实体
// Total在创建时由明细计算;ShippingAddress下单后不再变化
type Order struct {
	ID              uint
	OrderNo         string // 订单号(业务主键,全局唯一)
	UserID          uint
	Status          Status
	Total           decimal.Decimal
	OrderDate       time.Time
	ShippingAddress string
	Items           []OrderItem
	UpdatedAt       time.Time
}

// OrderItem 订单明细项
// Price记录下单时的单价(价格快照),图书改价后历史订单金额不变
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    decimal.Decimal
}

// Subtotal 明细小计
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder 创建新订单(工厂方法)
// 初始状态为PENDING,总金额由明细计算
func NewOrder(orderNo string, userID uint, shippingAddress string, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrBlankShippingAddress
	}

	now := time.Now()
	o := &Order{
		OrderNo:         orderNo,
		UserID:          userID,
		Status:          StatusPending,
		OrderDate:       now,
		ShippingAddress: strings.TrimSpace(shippingAddress),
		Items:           items,
		UpdatedAt:       now,
	}
	o.Total = o.CalculateTotal()
	return o, nil
}

// CanTransitionTo 检查是否可以转换到目标状态
func (o *Order) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// CalculateTotal 计算订单总金额: Σ 数量 × 单价
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
