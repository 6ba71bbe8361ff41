package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api/inventory")
	{
		inventory.GET("", h.ListItems)
		inventory.GET("/low-stock", h.LowStock)
		inventory.GET("/summary", h.Summary)
		inventory.GET("/:id", h.GetItem)
		inventory.POST("", h.CreateItem)
		inventory.PUT("/:id", h.UpdateItem)
		inventory.DELETE("/:id", h.DeleteItem)
	}
}

// ListItems handles retrieving stock lines
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Param        fabric_type  query     string  false  "Exact fabric type"
// @Param        low_stock    query     bool    false  "Only lines below 50 meters"
// @Success      200  {object}  response.Response{data=[]model.InventoryItem}
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	lowStock, _ := strconv.ParseBool(c.Query("low_stock"))
	items, err := h.inventoryService.ListItems(c.Request.Context(), repository.InventoryFilter{
		FabricType: c.Query("fabric_type"),
		LowStock:   lowStock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(items))
}

// LowStock returns lines with fewer than 50 meters
// @Summary      Low stock items
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.InventoryItem}
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(items))
}

// Summary returns stock totals
// @Summary      Inventory summary
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  response.Response{data=model.InventorySummary}
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(summary))
}

// GetItem returns one stock line
// @Summary      Get inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Inventory item ID"
// @Success      200  {object}  response.Response{data=model.InventoryItem}
// @Failure      404  {object}  response.Response
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.inventoryService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(item))
}

// CreateItem adds a stock line
// @Summary      Create inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateInventoryRequest  true  "Stock line"
// @Success      201      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Router       /api/inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req service.CreateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(item))
}

// UpdateItem merges the supplied fields into a stock line
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Inventory item ID"
// @Param        payload  body      service.UpdateInventoryRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var req service.UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(item))
}

// DeleteItem removes a stock line
// @Summary      Delete inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Inventory item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Inventory item deleted"))
}
