package category

import (
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

var (
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")
	ErrNameDuplicate    = apperrors.New(apperrors.ErrCodeCategoryDuplicate, "分类名称已存在")
	ErrBlankName        = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")
)
