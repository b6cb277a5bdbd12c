package dto

import (
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// PageQuery 分页参数
//
//	?page=0&size=5&sort=price,DESC
type PageQuery struct {
	Page int      `form:"page"`
	Size int      `form:"size"`
	Sort []string `form:"sort" binding:"omitempty,dive,sortexpr"`
}

// Pageable 按资源的排序规则解析
func (q PageQuery) Pageable(spec pagination.Spec) (pagination.Pageable, error) {
	return pagination.Parse(q.Page, q.Size, q.Sort, spec)
}
