package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/cart"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb/gormdbtest"
)

type fixture struct {
	carts cart.Repository
	books book.Repository
	add   *AddCartItemUseCase
	get   *GetCartUseCase
	upd   *UpdateCartItemUseCase
	del   *RemoveCartItemUseCase
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := gormdbtest.NewDB(t)
	carts := gormdb.NewCartRepository(db)
	books := gormdb.NewBookRepository(db)

	ctx := context.Background()
	for _, userID := range []uint{1, 2} {
		require.NoError(t, carts.Create(ctx, &cart.ShoppingCart{UserID: userID}))
	}

	return &fixture{
		carts: carts,
		books: books,
		add:   NewAddCartItemUseCase(carts, book.NewService(books)),
		get:   NewGetCartUseCase(carts),
		upd:   NewUpdateCartItemUseCase(carts),
		del:   NewRemoveCartItemUseCase(carts),
	}
}

func (f *fixture) createBook(t *testing.T, title, isbn string) *book.Book {
	t.Helper()
	b, err := book.NewBook(title, "Author", isbn, decimal.RequireFromString("10.00"), "", "", nil)
	require.NoError(t, err)
	require.NoError(t, f.books.Create(context.Background(), b))
	return b
}

func TestAddCartItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b := f.createBook(t, "Go语言实战", "9787115437884")

	item, err := f.add.Execute(ctx, 1, b.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Go语言实战", item.BookTitle)
	assert.Equal(t, 2, item.Quantity)

	// 重复加入同一本书被拒绝,不会出现第二行
	_, err = f.add.Execute(ctx, 1, b.ID, 1)
	assert.ErrorIs(t, err, cart.ErrCartItemDuplicate)

	got, err := f.get.Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, uint(1), got.UserID)
	assert.Equal(t, b.ID, got.Items[0].BookID)

	// 其他用户的购物车不受影响
	other, err := f.get.Execute(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestAddCartItem_Invalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.add.Execute(ctx, 1, 999, 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	b := f.createBook(t, "Go语言实战", "9787115437884")
	_, err = f.add.Execute(ctx, 1, b.ID, -1)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	_, err = f.add.Execute(ctx, 42, b.ID, 1)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b := f.createBook(t, "Go语言实战", "9787115437884")

	item, err := f.add.Execute(ctx, 1, b.ID, 1)
	require.NoError(t, err)

	resp, err := f.upd.Execute(ctx, 1, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Quantity)

	// 只能操作自己购物车中的条目
	_, err = f.upd.Execute(ctx, 2, item.ID, 9)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	assert.ErrorIs(t, f.del.Execute(ctx, 2, item.ID), cart.ErrCartItemNotFound)

	require.NoError(t, f.del.Execute(ctx, 1, item.ID))
	got, err := f.get.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	// 删除后可以重新加入
	_, err = f.add.Execute(ctx, 1, b.ID, 1)
	require.NoError(t, err)
}
