package book

import (
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在(含已软删除)
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	ErrBlankTitle  = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")
	ErrBlankAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrInvalidPriceFilter 搜索条件中的价格无法解析
	ErrInvalidPriceFilter = apperrors.New(apperrors.ErrCodeInvalidPriceFilter, "价格筛选条件必须是数字")
)
