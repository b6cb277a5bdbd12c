package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/online-bookstore/internal/application/category"
	"github.com/xiebiao/online-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	create *appcategory.CreateCategoryUseCase
	update *appcategory.UpdateCategoryUseCase
	remove *appcategory.DeleteCategoryUseCase
	query  *appcategory.QueryCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	create *appcategory.CreateCategoryUseCase,
	update *appcategory.UpdateCategoryUseCase,
	del *appcategory.DeleteCategoryUseCase,
	query *appcategory.QueryCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{create: create, update: update, remove: del, query: query}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=appcategory.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "分类名已存在"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.create.Execute(c.Request.Context(), appcategory.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=appcategory.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类名已存在"
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.update.Execute(c.Request.Context(), id, appcategory.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteCategory 软删除分类
// @Summary      删除分类
// @Tags         分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=appcategory.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量"
// @Param        sort query string false "排序,如name,ASC"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appcategory.CategoryResponse}}
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page, ok := pageable(c, pagination.CategorySpec)
	if !ok {
		return
	}
	result, err := h.query.List(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}

// ListBooks 分类下的图书
// @Summary      分类下的图书
// @Description  返回的图书不包含分类ID
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量"
// @Param        sort query string false "排序"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appbook.BookSummary}}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id}/books [get]
func (h *CategoryHandler) ListBooks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, ok := pageable(c, pagination.BookSpec)
	if !ok {
		return
	}
	result, err := h.query.ListBooks(c.Request.Context(), id, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}
