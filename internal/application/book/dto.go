package book

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
)

// BookResponse 图书详情DTO
// 价格序列化为字符串（如"22.50"），避免客户端浮点数精度问题
type BookResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        string          `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CoverImage  string          `json:"cover_image"`
	CategoryIDs []uint          `json:"category_ids"`
}

// BookSummary 分类下的图书（不含分类ID）
type BookSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        string          `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CoverImage  string          `json:"cover_image"`
}

// BookInput 创建/更新图书的输入
type BookInput struct {
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

func (in BookInput) toEntity() (*book.Book, error) {
	return book.NewBook(in.Title, in.Author, in.ISBN, in.Price, in.Description, in.CoverImage, in.CategoryIDs)
}

// ToBookResponse 领域实体 → DTO
func ToBookResponse(b *book.Book) *BookResponse {
	ids := b.CategoryIDs
	if ids == nil {
		ids = []uint{}
	}
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price.Round(2),
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CategoryIDs: ids,
	}
}

// ToBookSummary 领域实体 → 不含分类的DTO
func ToBookSummary(b *book.Book) BookSummary {
	return BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price.Round(2),
		Description: b.Description,
		CoverImage:  b.CoverImage,
	}
}

func toBookResponses(books []*book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = *ToBookResponse(b)
	}
	return out
}
