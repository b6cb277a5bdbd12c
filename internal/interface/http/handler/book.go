package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/online-bookstore/internal/application/book"
	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

// BookHandler 图书HTTP处理器
// Handler只负责解析请求、调用用例、返回响应,不包含业务逻辑
type BookHandler struct {
	createBook *appbook.CreateBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	getBook    *appbook.GetBookUseCase
	listBooks  *appbook.ListBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	getBook *appbook.GetBookUseCase,
	listBooks *appbook.ListBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
		getBook:    getBook,
		listBooks:  listBooks,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  管理员创建图书,ISBN不能重复,分类必须存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), toBookInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateBook 整体更新图书
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateBook.Execute(c.Request.Context(), id, toBookInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteBook 软删除图书
// @Summary      删除图书
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页查询,默认按价格升序
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量(默认5,最大100)"
// @Param        sort query string false "排序,如price,DESC"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appbook.BookResponse}}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page, ok := pageable(c, pagination.BookSpec)
	if !ok {
		return
	}
	result, err := h.listBooks.Execute(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}

// SearchBooks 条件搜索
// @Summary      搜索图书
// @Description  同一参数的多个值为OR,不同参数之间为AND;title子串匹配,author/isbn精确匹配,price取最小值到最大值的闭区间
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        title query []string false "书名" collectionFormat(multi)
// @Param        author query []string false "作者" collectionFormat(multi)
// @Param        isbn query []string false "ISBN" collectionFormat(multi)
// @Param        price query []string false "价格" collectionFormat(multi)
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量"
// @Param        sort query string false "排序"
// @Success      200 {object} response.Response{data=response.PageData{list=[]appbook.BookResponse}}
// @Failure      400 {object} response.Response "价格格式错误"
// @Router       /books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var q dto.BookSearchQuery
	if !bindQuery(c, &q) {
		return
	}
	page, ok := pageable(c, pagination.BookSpec)
	if !ok {
		return
	}

	params := book.SearchParams{
		Title:  dto.SplitValues(q.Title),
		Author: dto.SplitValues(q.Author),
		ISBN:   dto.SplitValues(q.ISBN),
		Price:  dto.SplitValues(q.Price),
	}
	result, err := h.listBooks.Search(c.Request.Context(), params, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}

func toBookInput(req dto.BookRequest) appbook.BookInput {
	return appbook.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       *req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	}
}
