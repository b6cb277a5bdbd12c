package gormdb_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/category"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb/gormdbtest"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

func mustBook(t *testing.T, title, author, isbn, price string, categoryIDs ...uint) *book.Book {
	t.Helper()
	b, err := book.NewBook(title, author, isbn, decimal.RequireFromString(price), "", "", categoryIDs)
	require.NoError(t, err)
	return b
}

func seedBooks(t *testing.T, db *gorm.DB) book.Repository {
	t.Helper()
	repo := gormdb.NewBookRepository(db)
	ctx := context.Background()

	for _, b := range []*book.Book{
		mustBook(t, "Go语言实战", "William", "9787115437884", "22.50"),
		mustBook(t, "Go程序设计语言", "Donovan", "9787111558422", "24.00"),
		mustBook(t, "Rust权威指南", "Klabnik", "9787115546081", "30.00"),
		mustBook(t, "深入理解计算机系统", "Bryant", "9787111544937", "99.00"),
	} {
		require.NoError(t, repo.Create(ctx, b))
	}
	return repo
}

func titles(books []*book.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func page(t *testing.T, sorts ...string) pagination.Pageable {
	t.Helper()
	p, err := pagination.Parse(0, 20, sorts, pagination.BookSpec)
	require.NoError(t, err)
	return p
}

func TestBookRepository_SearchEmptyEqualsList(t *testing.T) {
	repo := seedBooks(t, gormdbtest.NewDB(t))
	ctx := context.Background()

	listed, total, err := repo.List(ctx, page(t))
	require.NoError(t, err)
	searched, searchTotal, err := repo.Search(ctx, book.Criteria{}, page(t))
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	assert.Equal(t, total, searchTotal)
	assert.Equal(t, titles(listed), titles(searched))
	// 默认按价格升序
	assert.Equal(t, "Go语言实战", listed[0].Title)
}

func TestBookRepository_Search(t *testing.T) {
	repo := seedBooks(t, gormdbtest.NewDB(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		params book.SearchParams
		want   []string
	}{
		{
			name:   "价格闭区间",
			params: book.SearchParams{Price: []string{"24", "22.5"}},
			want:   []string{"Go语言实战", "Go程序设计语言"},
		},
		{
			name:   "书名子串,多个值为OR",
			params: book.SearchParams{Title: []string{"Go", "Rust"}},
			want:   []string{"Go语言实战", "Go程序设计语言", "Rust权威指南"},
		},
		{
			name:   "不同字段之间为AND",
			params: book.SearchParams{Title: []string{"Go"}, Author: []string{"Donovan", "Bryant"}},
			want:   []string{"Go程序设计语言"},
		},
		{
			name:   "ISBN精确匹配",
			params: book.SearchParams{ISBN: []string{"9787111544937"}},
			want:   []string{"深入理解计算机系统"},
		},
		{
			name:   "作者必须完全一致",
			params: book.SearchParams{Author: []string{"Don"}},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := tt.params.Build()
			require.NoError(t, err)

			books, total, err := repo.Search(ctx, criteria, page(t))
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.Equal(t, tt.want, titles(books))
		})
	}
}

func TestBookRepository_SortAndPage(t *testing.T) {
	repo := seedBooks(t, gormdbtest.NewDB(t))

	p, err := pagination.Parse(1, 2, []string{"price,DESC"}, pagination.BookSpec)
	require.NoError(t, err)

	books, total, err := repo.List(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{"Go程序设计语言", "Go语言实战"}, titles(books))
}

func TestBookRepository_CreateDuplicateISBN(t *testing.T) {
	repo := seedBooks(t, gormdbtest.NewDB(t))

	err := repo.Create(context.Background(), mustBook(t, "重复", "Someone", "9787115437884", "1"))
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)
}

func TestBookRepository_SoftDelete(t *testing.T) {
	repo := seedBooks(t, gormdbtest.NewDB(t))
	ctx := context.Background()

	found, err := repo.FindByISBN(ctx, "9787115546081")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, found.ID))

	_, err = repo.FindByID(ctx, found.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, found.ID), book.ErrBookNotFound)

	_, total, err := repo.List(ctx, page(t))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestBookRepository_Categories(t *testing.T) {
	db := gormdbtest.NewDB(t)
	ctx := context.Background()
	books := gormdb.NewBookRepository(db)
	categories := gormdb.NewCategoryRepository(db)

	programming, err := category.NewCategory("编程", "")
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, programming))
	classics, err := category.NewCategory("经典", "")
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, classics))

	b := mustBook(t, "Go语言实战", "William", "9787115437884", "22.50", programming.ID)
	require.NoError(t, books.Create(ctx, b))

	found, err := books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{programming.ID}, found.CategoryIDs)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("22.5")))

	// 更新时替换分类关联
	found.CategoryIDs = []uint{classics.ID}
	require.NoError(t, books.Update(ctx, found))

	found, err = books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{classics.ID}, found.CategoryIDs)

	inClassics, total, err := books.ListByCategory(ctx, classics.ID, page(t))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"Go语言实战"}, titles(inClassics))

	_, total, err = books.ListByCategory(ctx, programming.ID, page(t))
	require.NoError(t, err)
	assert.Zero(t, total)

	ids, err := books.ListIDsByCategory(ctx, classics.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids)

	// 已删除的图书不在结果中
	require.NoError(t, books.Delete(ctx, b.ID))
	ids, err = books.ListIDsByCategory(ctx, classics.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
