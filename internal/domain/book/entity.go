package book

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/online-bookstore/pkg/validator"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. 价格使用decimal.Decimal,避免浮点数精度问题
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. 与分类是多对多关系,实体中只保存分类ID(避免跨聚合引用)
type Book struct {
	ID          uint
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 创建时即完成业务规则校验,保证实体始终有效
func NewBook(title, author, isbn string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) (*Book, error) {
	now := time.Now()
	b := &Book{
		Title:       strings.TrimSpace(title),
		Author:      strings.TrimSpace(author),
		ISBN:        validator.NormalizeISBN(isbn),
		Price:       price,
		Description: description,
		CoverImage:  coverImage,
		CategoryIDs: dedupIDs(categoryIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate 校验业务规则
// - 书名、作者、ISBN不能为空
// - ISBN为10位或13位
// - 价格不能为负数
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrBlankTitle
	}
	if b.Author == "" {
		return ErrBlankAuthor
	}
	if b.ISBN == "" || !validator.IsValidISBN(b.ISBN) {
		return ErrInvalidISBN
	}
	if b.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// ReplaceWith 用新内容整体替换图书信息(PUT语义),ID与创建时间保持不变
func (b *Book) ReplaceWith(other *Book) error {
	b.Title = other.Title
	b.Author = other.Author
	b.ISBN = other.ISBN
	b.Price = other.Price
	b.Description = other.Description
	b.CoverImage = other.CoverImage
	b.CategoryIDs = other.CategoryIDs
	b.UpdatedAt = time.Now()
	return b.Validate()
}

func dedupIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
