package gormdb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// 开启TranslateError后各驱动都会转换为gorm.ErrDuplicatedKey，
// 错误信息匹配用于兜底：
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - SQLite: UNIQUE constraint failed: books.isbn
// - PostgreSQL 23505: duplicate key value violates unique constraint
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// paginate 分页与排序Scope
// 排序列来自pagination的白名单，这里再限定到当前表，避免JOIN时列名歧义
func paginate(page pagination.Pageable) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, o := range page.Order {
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Table: clause.CurrentTable, Name: o.Column},
				Desc:   o.Desc,
			})
		}
		if page.Size > 0 {
			db = db.Offset(page.Offset()).Limit(page.Size)
		}
		return db
	}
}
