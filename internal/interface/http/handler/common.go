package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/online-bookstore/internal/interface/http/dto"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

// bindJSON 绑定并校验请求体,失败时已写入400响应
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return false
	}
	return true
}

// bindQuery 绑定并校验查询参数
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return false
	}
	return true
}

// pathID 解析路径中的正整数ID
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.Invalid("无效的ID: "+c.Param(name)))
		return 0, false
	}
	return uint(id), true
}

// pageable 解析分页参数,失败时已写入400响应
func pageable(c *gin.Context, spec pagination.Spec) (pagination.Pageable, bool) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return pagination.Pageable{}, false
	}
	p, err := q.Pageable(spec)
	if err != nil {
		response.Error(c, err)
		return pagination.Pageable{}, false
	}
	return p, true
}

func successPage[T any](c *gin.Context, r *pagination.Result[T]) {
	response.SuccessWithPage(c, r.List, r.Total, r.Page, r.Size)
}
