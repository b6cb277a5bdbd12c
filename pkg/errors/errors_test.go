package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"无权限", ErrForbidden, http.StatusForbidden},
		{"资源不存在", New(ErrCodeBookNotFound, "图书不存在"), http.StatusNotFound},
		{"数据重复", New(ErrCodeISBNDuplicate, "ISBN已存在"), http.StatusConflict},
		{"限流", ErrTooManyRequests, http.StatusTooManyRequests},
		{"内部错误", ErrInternal, http.StatusInternalServerError},
		{"未知错误码", New(123, "unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("包装过的AppError可以被提取", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrForbidden)
		assert.Same(t, ErrForbidden, GetAppError(wrapped))
		assert.True(t, IsAppError(wrapped))
	})

	t.Run("普通错误转换为内部错误", func(t *testing.T) {
		raw := errors.New("connection refused")
		appErr := GetAppError(raw)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, raw)
	})

	t.Run("按错误码判断", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(ErrCodeCartItemDuplicate, "dup"))
		assert.True(t, HasCode(err, ErrCodeCartItemDuplicate))
		assert.False(t, HasCode(err, ErrCodeISBNDuplicate))
	})
}
