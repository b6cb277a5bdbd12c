package cart

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/cart"
)

// AddCartItemUseCase 把图书加入当前用户的购物车
// 业务规则:
// 1. 图书必须存在(未被软删除)
// 2. 同一本书只能加入一次,重复加入返回ErrCartItemDuplicate
type AddCartItemUseCase struct {
	cartRepo    cart.Repository
	bookService book.Service
}

// NewAddCartItemUseCase 创建加购用例
func NewAddCartItemUseCase(cartRepo cart.Repository, bookService book.Service) *AddCartItemUseCase {
	return &AddCartItemUseCase{cartRepo: cartRepo, bookService: bookService}
}

// Execute 执行加购
func (uc *AddCartItemUseCase) Execute(ctx context.Context, userID, bookID uint, quantity int) (*CartItemView, error) {
	b, err := uc.bookService.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	sc, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sc.Contains(bookID) {
		return nil, cart.ErrCartItemDuplicate
	}

	item, err := cart.NewCartItem(sc.ID, bookID, quantity)
	if err != nil {
		return nil, err
	}
	// 并发加购时由仓储层的查重兜底
	if err := uc.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	item.BookTitle = b.Title

	log.Ctx(ctx).Info().
		Uint("book_id", bookID).
		Int("quantity", quantity).
		Msg("图书已加入购物车")

	view := toCartItemView(item)
	return &view, nil
}
