package cart

import (
	"context"

	"github.com/xiebiao/online-bookstore/internal/domain/cart"
)

// GetCartUseCase 查看当前用户的购物车
type GetCartUseCase struct {
	cartRepo cart.Repository
}

func NewGetCartUseCase(cartRepo cart.Repository) *GetCartUseCase {
	return &GetCartUseCase{cartRepo: cartRepo}
}

func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*CartResponse, error) {
	sc, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(sc), nil
}

// UpdateCartItemUseCase 修改条目数量
// 只能修改自己购物车中的条目,否则返回ErrCartItemNotFound
type UpdateCartItemUseCase struct {
	cartRepo cart.Repository
}

func NewUpdateCartItemUseCase(cartRepo cart.Repository) *UpdateCartItemUseCase {
	return &UpdateCartItemUseCase{cartRepo: cartRepo}
}

func (uc *UpdateCartItemUseCase) Execute(ctx context.Context, userID, itemID uint, quantity int) (*QuantityResponse, error) {
	sc, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := uc.cartRepo.FindItem(ctx, sc.ID, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.ChangeQuantity(quantity); err != nil {
		return nil, err
	}
	if err := uc.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return &QuantityResponse{Quantity: item.Quantity}, nil
}

// RemoveCartItemUseCase 从购物车移除条目(软删除)
type RemoveCartItemUseCase struct {
	cartRepo cart.Repository
}

func NewRemoveCartItemUseCase(cartRepo cart.Repository) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{cartRepo: cartRepo}
}

func (uc *RemoveCartItemUseCase) Execute(ctx context.Context, userID, itemID uint) error {
	sc, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return uc.cartRepo.DeleteItem(ctx, sc.ID, itemID)
}
