package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/online-bookstore/internal/domain/cart"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, c *cart.ShoppingCart) error {
	model := &ShoppingCartModel{UserID: c.UserID}
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}
	c.ID = model.ID
	return nil
}

// FindByUserID 查询购物车，条目按加入顺序排列并带出书名
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.ShoppingCart, error) {
	var model ShoppingCartModel
	err := r.getDB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return orderByID(withLiveBook(db))
		}).
		Preload("Items.Book").
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	c := &cart.ShoppingCart{
		ID:     model.ID,
		UserID: model.UserID,
		Items:  make([]cart.CartItem, len(model.Items)),
	}
	for i := range model.Items {
		c.Items[i] = *toCartItemEntity(&model.Items[i])
	}
	return c, nil
}

// AddItem 添加条目
// 同一本书在未删除的条目中只能出现一次，已移除（软删除）的条目不影响再次添加
func (r *cartRepository) AddItem(ctx context.Context, item *cart.CartItem) error {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&CartItemModel{}).
		Where("shopping_cart_id = ? AND book_id = ?", item.ShoppingCartID, item.BookID).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(err, "查询购物车条目失败")
	}
	if count > 0 {
		return cart.ErrCartItemDuplicate
	}

	model := &CartItemModel{
		ShoppingCartID: item.ShoppingCartID,
		BookID:         item.BookID,
		Quantity:       item.Quantity,
	}
	if err := db.Omit("Book").Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车条目失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *cartRepository) FindItem(ctx context.Context, cartID, itemID uint) (*cart.CartItem, error) {
	var model CartItemModel
	err := r.getDB(ctx).
		Preload("Book").
		Scopes(withLiveBook).
		Where("id = ? AND shopping_cart_id = ?", itemID, cartID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}
	return toCartItemEntity(&model), nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, item *cart.CartItem) error {
	result := r.getDB(ctx).Model(&CartItemModel{}).
		Where("id = ? AND shopping_cart_id = ?", item.ID, item.ShoppingCartID).
		Update("quantity", item.Quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uint) error {
	result := r.getDB(ctx).
		Where("id = ? AND shopping_cart_id = ?", itemID, cartID).
		Delete(&CartItemModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID uint) error {
	err := r.getDB(ctx).
		Where("shopping_cart_id = ?", cartID).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// withLiveBook 过滤掉图书已被软删除的条目
func withLiveBook(db *gorm.DB) *gorm.DB {
	books := db.Session(&gorm.Session{NewDB: true}).Model(&BookModel{}).Select("id")
	return db.Where("book_id IN (?)", books)
}

func toCartItemEntity(m *CartItemModel) *cart.CartItem {
	return &cart.CartItem{
		ID:             m.ID,
		ShoppingCartID: m.ShoppingCartID,
		BookID:         m.BookID,
		BookTitle:      m.Book.Title,
		Quantity:       m.Quantity,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *cartRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}
