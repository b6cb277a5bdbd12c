package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/online-bookstore/internal/application/order"
	"github.com/xiebiao/online-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/online-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrder  *apporder.CreateOrderUseCase
	queryOrder   *apporder.QueryOrderUseCase
	updateStatus *apporder.UpdateOrderStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrder *apporder.CreateOrderUseCase,
	queryOrder *apporder.QueryOrderUseCase,
	updateStatus *apporder.UpdateOrderStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrder:  createOrder,
		queryOrder:   queryOrder,
		updateStatus: updateStatus,
	}
}

// CreateOrder 用购物车下单
// @Summary      下单
// @Description  购物车中的全部图书按当前价格生成订单,成功后清空购物车
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest false "收货地址"
// @Success      201 {object} response.Response{data=apporder.OrderResponse}
// @Failure      400 {object} response.Response "购物车为空"
// @Failure      401 {object} response.Response "未登录"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	// 请求体可以省略
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	result, err := h.createOrder.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:          middleware.GetUserID(c),
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListOrders 订单历史
// @Summary      订单历史
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量"
// @Param        sort query string false "排序,如id,DESC"
// @Success      200 {object} response.Response{data=response.PageData{list=[]apporder.OrderResponse}}
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, ok := pageable(c, pagination.OrderSpec)
	if !ok {
		return
	}
	result, err := h.queryOrder.List(c.Request.Context(), middleware.GetUserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}

// ListItems 订单明细
// @Summary      订单明细
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        page query int false "页码(从0开始)"
// @Param        size query int false "每页数量"
// @Param        sort query string false "排序"
// @Success      200 {object} response.Response{data=response.PageData{list=[]apporder.OrderItemResponse}}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id}/items [get]
func (h *OrderHandler) ListItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, ok := pageable(c, pagination.OrderItemSpec)
	if !ok {
		return
	}
	result, err := h.queryOrder.ListItems(c.Request.Context(), middleware.GetUserID(c), id, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	successPage(c, result)
}

// GetItem 订单中的单条明细
// @Summary      订单明细详情
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        itemId path int true "明细ID"
// @Success      200 {object} response.Response{data=apporder.OrderItemResponse}
// @Failure      404 {object} response.Response "订单或明细不存在"
// @Router       /orders/{id}/items/{itemId} [get]
func (h *OrderHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	result, err := h.queryOrder.GetItem(c.Request.Context(), middleware.GetUserID(c), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateStatus 修改订单状态
// @Summary      修改订单状态
// @Description  管理员操作;PENDING→PAID/CANCELLED,PAID→SHIPPED/CANCELLED,SHIPPED→COMPLETED
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=apporder.OrderResponse}
// @Failure      400 {object} response.Response "状态非法"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
