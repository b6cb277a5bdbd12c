// Package pagination 解析分页与排序参数
//
// 请求格式：
//
//	GET /books?page=0&size=5&sort=price,DESC&sort=title,ASC
//
// 约定：
//   - page从0开始，默认0
//   - size默认5，最大100
//   - sort格式为"field,DIRECTION"，DIRECTION不区分大小写，省略时为ASC
//   - 每个资源声明允许排序的字段白名单（对外字段名 → 数据库列名）
package pagination

import (
	"strings"

	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

const (
	DefaultPage = 0
	DefaultSize = 5
	MaxSize     = 100
)

// Order 单个排序条件
type Order struct {
	Column string // 数据库列名
	Desc   bool
}

// Pageable 分页请求
type Pageable struct {
	Page  int
	Size  int
	Order []Order
}

// Offset 计算SQL偏移量
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Spec 资源的排序规则
type Spec struct {
	Default string            // 默认排序，如"price,ASC"
	Fields  map[string]string // 对外字段名 → 数据库列名
}

// 各资源的排序规则
var (
	BookSpec = Spec{
		Default: "price,ASC",
		Fields: map[string]string{
			"id":     "id",
			"title":  "title",
			"author": "author",
			"isbn":   "isbn",
			"price":  "price",
		},
	}

	CategorySpec = Spec{
		Default: "name,ASC",
		Fields: map[string]string{
			"id":   "id",
			"name": "name",
		},
	}

	OrderSpec = Spec{
		Default: "id,ASC",
		Fields: map[string]string{
			"id":         "id",
			"status":     "status",
			"total":      "total",
			"order_date": "order_date",
			"orderDate":  "order_date",
		},
	}

	OrderItemSpec = Spec{
		Default: "id,ASC",
		Fields: map[string]string{
			"id":       "id",
			"quantity": "quantity",
			"price":    "price",
		},
	}
)

// Parse 根据规则解析分页参数
// page<0或size越界时按默认值处理；sort字段不在白名单内返回参数错误
func Parse(page, size int, sorts []string, spec Spec) (Pageable, error) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	var raw []string
	for _, s := range sorts {
		if strings.TrimSpace(s) != "" {
			raw = append(raw, s)
		}
	}
	if len(raw) == 0 {
		raw = []string{spec.Default}
	}

	orders := make([]Order, 0, len(raw))
	for _, s := range raw {
		o, err := parseOrder(s, spec)
		if err != nil {
			return Pageable{}, err
		}
		orders = append(orders, o)
	}

	return Pageable{Page: page, Size: size, Order: orders}, nil
}

// Unsorted 不带排序的分页（测试与内部查询使用）
func Unsorted(page, size int) Pageable {
	return Pageable{Page: page, Size: size}
}

func parseOrder(s string, spec Spec) (Order, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return Order{}, apperrors.ErrInvalidSort
	}

	column, ok := spec.Fields[strings.TrimSpace(parts[0])]
	if !ok {
		return Order{}, apperrors.New(apperrors.ErrCodeInvalidSort, "不支持的排序字段: "+parts[0])
	}

	if len(parts) == 1 {
		return Order{Column: column}, nil
	}

	switch strings.ToUpper(strings.TrimSpace(parts[1])) {
	case "ASC", "":
		return Order{Column: column}, nil
	case "DESC":
		return Order{Column: column, Desc: true}, nil
	default:
		return Order{}, apperrors.ErrInvalidSort
	}
}

// Result 分页查询结果
type Result[T any] struct {
	List  []T
	Total int64
	Page  int
	Size  int
}

// NewResult 用分页请求构造查询结果
func NewResult[T any](list []T, total int64, p Pageable) *Result[T] {
	if list == nil {
		list = []T{}
	}
	return &Result[T]{List: list, Total: total, Page: p.Page, Size: p.Size}
}
