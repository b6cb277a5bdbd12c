package cart

import (
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

var (
	ErrCartNotFound      = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")
	ErrCartItemNotFound  = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")
	ErrCartItemDuplicate = apperrors.New(apperrors.ErrCodeCartItemDuplicate, "该图书已在购物车中")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidParams, "数量不能为负数")
)
