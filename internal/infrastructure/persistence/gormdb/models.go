package gormdb

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 设计说明：
// 1. 这里是infrastructure层的数据模型，包含GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者之间的转换
// 3. 除角色、订单明细外都使用软删除（DeletedAt）

// RoleModel 角色表（USER / ADMIN）
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:20;not null;comment:角色名"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserModel 用户表
type UserModel struct {
	ID              uint           `gorm:"primaryKey"`
	Email           string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password        string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName       string         `gorm:"size:50;not null;comment:名"`
	LastName        string         `gorm:"size:50;not null;comment:姓"`
	ShippingAddress string         `gorm:"size:255;comment:默认收货地址"`
	Roles           []RoleModel    `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	CreatedAt       time.Time      `gorm:"comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel 分类表
// 名称唯一索引包含已软删除的记录，删除后的名称不能直接复用
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	Description string         `gorm:"size:500;comment:分类描述"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书表
// 1. 价格使用decimal(10,2)存储，避免浮点数精度问题
// 2. ISBN有唯一索引，防止重复
// 3. 与分类通过book_categories关联（多对多）
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string          `gorm:"index:idx_search;size:100;not null;comment:作者"`
	ISBN        string          `gorm:"column:isbn;uniqueIndex;size:20;not null;comment:ISBN号"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);index;not null;comment:价格"`
	Description string          `gorm:"type:text;comment:图书描述"`
	CoverImage  string          `gorm:"size:500;comment:封面图片URL"`
	Categories  []CategoryModel `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt  `gorm:"index;comment:删除时间（软删除）"`
}

func (BookModel) TableName() string {
	return "books"
}

// ShoppingCartModel 购物车表（每个用户一个）
type ShoppingCartModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex;not null;comment:用户ID"`
	Items     []CartItemModel `gorm:"foreignKey:ShoppingCartID"`
	CreatedAt time.Time       `gorm:"comment:创建时间"`
	UpdatedAt time.Time       `gorm:"comment:更新时间"`
}

func (ShoppingCartModel) TableName() string {
	return "shopping_carts"
}

// CartItemModel 购物车条目表
// 同一购物车内图书唯一由仓储在未删除的条目中保证（软删除的条目不参与）
type CartItemModel struct {
	ID             uint           `gorm:"primaryKey"`
	ShoppingCartID uint           `gorm:"index;not null;comment:购物车ID"`
	BookID         uint           `gorm:"index;not null;comment:图书ID"`
	Book           BookModel      `gorm:"foreignKey:BookID"`
	Quantity       int            `gorm:"not null;comment:数量"`
	CreatedAt      time.Time      `gorm:"comment:创建时间"`
	UpdatedAt      time.Time      `gorm:"comment:更新时间"`
	DeletedAt      gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel 订单表
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引（业务主键）
// 3. Status直接存储状态名（PENDING、PAID...）
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	Status          string           `gorm:"index;size:20;not null;comment:订单状态"`
	Total           decimal.Decimal  `gorm:"type:decimal(12,2);not null;comment:订单总金额"`
	OrderDate       time.Time        `gorm:"index;not null;comment:下单时间"`
	ShippingAddress string           `gorm:"size:255;not null;comment:收货地址"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"comment:创建时间"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt   `gorm:"index;comment:删除时间（软删除）"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表，Price为下单时的单价快照
type OrderItemModel struct {
	ID       uint            `gorm:"primaryKey"`
	OrderID  uint            `gorm:"index;not null;comment:订单ID"`
	BookID   uint            `gorm:"index;not null;comment:图书ID"`
	Quantity int             `gorm:"not null;comment:购买数量"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时单价"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
