package book

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SearchParams 图书搜索参数
// 每个字段都是可选的字符串数组,nil或空数组表示不按该字段过滤:
//
//	GET /books/search?title=Go&title=Rust&price=22&price=24
type SearchParams struct {
	Title  []string
	Author []string
	ISBN   []string
	Price  []string
}

// PriceRange 闭区间[Min, Max]
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Criteria 搜索条件(已校验)
// 组合规则:
// - 同一字段的多个值之间是OR
// - 不同字段之间是AND
// - title为子串匹配,author与isbn为精确匹配(IN)
// - price取所有值中的最小值与最大值,构成闭区间
type Criteria struct {
	Titles  []string
	Authors []string
	ISBNs   []string
	Price   *PriceRange
}

// IsEmpty 没有任何过滤条件(等价于普通列表查询)
func (c Criteria) IsEmpty() bool {
	return len(c.Titles) == 0 && len(c.Authors) == 0 && len(c.ISBNs) == 0 && c.Price == nil
}

// Build 将原始参数转换为搜索条件
// 价格无法解析为数字时返回ErrInvalidPriceFilter
func (p SearchParams) Build() (Criteria, error) {
	c := Criteria{
		Titles:  compact(p.Title),
		Authors: compact(p.Author),
		ISBNs:   compact(p.ISBN),
	}

	prices := compact(p.Price)
	if len(prices) == 0 {
		return c, nil
	}

	values := make([]decimal.Decimal, 0, len(prices))
	for _, raw := range prices {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Criteria{}, ErrInvalidPriceFilter
		}
		values = append(values, d)
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].LessThan(values[j])
	})
	c.Price = &PriceRange{Min: values[0], Max: values[len(values)-1]}

	return c, nil
}

// compact 去掉空白值;结果为空时返回nil
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
