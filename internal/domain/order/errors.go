package order

import (
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在(或不属于当前用户)
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrOrderItemNotFound 订单明细不存在
	ErrOrderItemNotFound = apperrors.New(apperrors.ErrCodeOrderItemNotFound, "订单明细不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidStatusTransition, "订单状态不允许此操作")

	// ErrInvalidStatus 未知的订单状态
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "订单状态必须是PENDING/PAID/SHIPPED/COMPLETED/CANCELLED之一")

	// ErrEmptyCart 购物车为空,无法下单
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车为空,无法下单")

	// ErrBlankShippingAddress 收货地址为空
	ErrBlankShippingAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "收货地址不能为空")
)
