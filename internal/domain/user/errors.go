package user

import (
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

// 用户领域错误定义
var (
	ErrUserNotFound     = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")
	ErrEmailDuplicate   = apperrors.New(apperrors.ErrCodeEmailDuplicate, "注册失败：该邮箱已被注册")
	ErrInvalidEmail     = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	ErrPasswordMismatch = apperrors.New(apperrors.ErrCodeInvalidParams, "两次输入的密码不一致")
	ErrBlankName        = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名不能为空")
)
