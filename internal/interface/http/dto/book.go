package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BookRequest 创建/更新图书请求
// price使用字符串或数字均可,如"22.50"或22.5
type BookRequest struct {
	Title       string           `json:"title" binding:"required,notblank,max=255"`
	Author      string           `json:"author" binding:"required,notblank,max=255"`
	ISBN        string           `json:"isbn" binding:"required,isbn"`
	Price       *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"22.50"`
	Description string           `json:"description" binding:"max=2000"`
	CoverImage  string           `json:"cover_image" binding:"max=512"`
	CategoryIDs []uint           `json:"category_ids" binding:"dive,gt=0"`
}

// BookSearchQuery 图书搜索参数
// 每个参数可以重复出现,也可以用逗号分隔多个值:
//
//	/books/search?title=Go&title=Rust
//	/books/search?price=22,24
type BookSearchQuery struct {
	Title  []string `form:"title"`
	Author []string `form:"author"`
	ISBN   []string `form:"isbn"`
	Price  []string `form:"price"`
}

// SplitValues 展开逗号分隔的值
func SplitValues(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
