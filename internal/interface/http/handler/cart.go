package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/online-bookstore/internal/application/cart"
	"github.com/xiebiao/online-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/online-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

// CartHandler 购物车HTTP处理器,所有操作都作用于当前登录用户的购物车
type CartHandler struct {
	addItem    *appcart.AddCartItemUseCase
	getCart    *appcart.GetCartUseCase
	updateItem *appcart.UpdateCartItemUseCase
	removeItem *appcart.RemoveCartItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addItem *appcart.AddCartItemUseCase,
	getCart *appcart.GetCartUseCase,
	updateItem *appcart.UpdateCartItemUseCase,
	removeItem *appcart.RemoveCartItemUseCase,
) *CartHandler {
	return &CartHandler{
		addItem:    addItem,
		getCart:    getCart,
		updateItem: updateItem,
		removeItem: removeItem,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.getCart.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书只能加入一次,再次加入返回409
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "图书与数量"
// @Success      201 {object} response.Response{data=appcart.CartItemView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "图书已在购物车中"
// @Router       /cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.addItem.Execute(c.Request.Context(), middleware.GetUserID(c), req.BookID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateItem 修改数量
// @Summary      修改购物车条目数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "购物车条目ID"
// @Param        request body dto.UpdateQuantityRequest true "数量"
// @Success      200 {object} response.Response{data=appcart.QuantityResponse}
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /cart/cart-items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.updateItem.Execute(c.Request.Context(), middleware.GetUserID(c), id, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveItem 移除条目
// @Summary      移除购物车条目
// @Tags         购物车
// @Security     BearerAuth
// @Param        id path int true "购物车条目ID"
// @Success      204
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /cart/cart-items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.removeItem.Execute(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
