package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/model"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

// AvailabilityResponse repeats the availability fields next to success
// for clients that read them from the top level.
type AvailabilityResponse struct {
	response.Response
	model.Availability
}

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("/check-availability", h.CheckAvailability)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.CancelOrder)
	}
}

// ListOrders returns orders with their customer's name and phone
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status       query     string  false  "Pending, Completed or Cancelled"
// @Param        customer_id  query     string  false  "Customer ID"
// @Success      200  {object}  response.Response{data=[]service.OrderResponse}
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context(), repository.OrderFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(orders))
}

// CheckAvailability compares requested meters against total stock of a fabric type
// @Summary      Check stock availability
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AvailabilityRequest  true  "Fabric type and quantity"
// @Success      200      {object}  handler.AvailabilityResponse{data=model.Availability}
// @Failure      400      {object}  response.Response
// @Router       /api/orders/check-availability [post]
func (h *OrderHandler) CheckAvailability(c *gin.Context) {
	var req service.AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.orderService.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{Response: response.Success(result), Availability: result})
}

// GetOrder returns one order with its customer projection
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response{data=service.OrderResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(order))
}

// CreateOrder places an order and generates its bill
// @Summary      Create order
// @Description  Creates a pending order and, in the same transaction, a bill with 18% tax
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderRequest  true  "Order payload"
// @Success      201      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(order))
}

// UpdateOrder merges the supplied fields into an order
// @Summary      Update order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order ID"
// @Param        payload  body      service.UpdateOrderRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req service.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(order))
}

// CancelOrder soft-cancels an order
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	msg, err := h.orderService.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message(msg))
}
