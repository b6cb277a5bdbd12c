package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，前三位即HTTP状态码（40400 → 404）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 由业务错误码推导HTTP状态码
// 规则：Code/100，例如40402 → 404；无法识别时返回500
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if http.StatusText(status) == "" || status < 400 {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Invalid 创建参数校验错误（400）
func Invalid(message string) *AppError {
	return New(ErrCodeInvalidParams, message)
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位为HTTP状态码，后两位为细分原因
// - 400xx: 参数校验失败
// - 401xx: 认证失败
// - 403xx: 无权限
// - 404xx: 资源不存在
// - 409xx: 数据重复
// - 429xx: 请求过于频繁
// - 500xx: 服务端错误

const (
	// 参数校验（40000-40099）
	ErrCodeInvalidParams           = 40000 // 参数错误(通用)
	ErrCodeBindError               = 40001 // 参数绑定失败
	ErrCodeInvalidPriceFilter      = 40002 // 价格筛选条件格式错误
	ErrCodeInvalidSort             = 40003 // 排序参数错误
	ErrCodeEmptyCart               = 40004 // 购物车为空
	ErrCodeInvalidStatusTransition = 40005 // 订单状态流转非法
	ErrCodeWeakPassword            = 40006 // 密码强度不足

	// 认证（40100-40199）
	ErrCodeUnauthorized   = 40100 // 未登录
	ErrCodeInvalidToken   = 40101 // Token无效
	ErrCodeTokenExpired   = 40102 // Token过期
	ErrCodeBadCredentials = 40103 // 邮箱或密码错误
	ErrCodeTokenRevoked   = 40104 // Token已注销

	// 授权（40300-40399）
	ErrCodeForbidden = 40300 // 无权限

	// 资源不存在（40400-40499）
	ErrCodeNotFound          = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound      = 40401 // 用户不存在
	ErrCodeBookNotFound      = 40402 // 图书不存在
	ErrCodeOrderNotFound     = 40403 // 订单不存在
	ErrCodeCategoryNotFound  = 40404 // 分类不存在
	ErrCodeCartItemNotFound  = 40405 // 购物车条目不存在
	ErrCodeCartNotFound      = 40406 // 购物车不存在
	ErrCodeOrderItemNotFound = 40407 // 订单明细不存在

	// 数据重复（40900-40999）
	ErrCodeDuplicateEntry    = 40900 // 重复记录(通用)
	ErrCodeEmailDuplicate    = 40901 // 邮箱已注册
	ErrCodeISBNDuplicate     = 40902 // ISBN已存在
	ErrCodeCategoryDuplicate = 40903 // 分类名已存在
	ErrCodeCartItemDuplicate = 40904 // 图书已在购物车中

	// 限流（42900-42999）
	ErrCodeTooManyRequests = 42900

	// 系统级错误（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	ErrUnauthorized   = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken   = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired   = New(ErrCodeTokenExpired, "Token已过期")
	ErrTokenRevoked   = New(ErrCodeTokenRevoked, "Token已失效，请重新登录")
	ErrBadCredentials = New(ErrCodeBadCredentials, "邮箱或密码错误")
	ErrForbidden      = New(ErrCodeForbidden, "无权限访问")

	// 资源不存在
	ErrNotFound = New(ErrCodeNotFound, "资源不存在")

	// 数据重复
	ErrDuplicateEntry = New(ErrCodeDuplicateEntry, "记录已存在")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrInvalidSort   = New(ErrCodeInvalidSort, "排序参数格式应为 field,ASC|DESC")
	ErrWeakPassword  = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")

	// 限流
	ErrTooManyRequests = New(ErrCodeTooManyRequests, "请求过于频繁，请稍后再试")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// HasCode 判断错误链中是否存在指定错误码的AppError
func HasCode(err error, code int) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
