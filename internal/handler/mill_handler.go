package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

type MillHandler struct {
	millService service.MillService
}

func NewMillHandler(millService service.MillService) *MillHandler {
	return &MillHandler{millService: millService}
}

func (h *MillHandler) RegisterRoutes(router *gin.RouterGroup) {
	mills := router.Group("/api/mills")
	{
		mills.GET("", h.ListMills)
		mills.POST("", h.CreateMill)
		mills.GET("/performance", h.Performance)

		mills.GET("/raw-materials", h.ListRawMaterials)
		mills.GET("/raw-materials/:id", h.GetRawMaterial)
		mills.POST("/raw-materials", h.CreateRawMaterial)
		mills.PUT("/raw-materials/:id", h.UpdateRawMaterial)

		mills.GET("/:id", h.GetMill)
	}
}

// ListMills returns all partner mills
// @Summary      List mills
// @Tags         mills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Mill}
// @Router       /api/mills [get]
func (h *MillHandler) ListMills(c *gin.Context) {
	mills, err := h.millService.ListMills(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(mills))
}

// GetMill returns one mill
// @Summary      Get mill
// @Tags         mills
// @Produce      json
// @Param        id   path      string  true  "Mill ID"
// @Success      200  {object}  response.Response{data=model.Mill}
// @Failure      404  {object}  response.Response
// @Router       /api/mills/{id} [get]
func (h *MillHandler) GetMill(c *gin.Context) {
	mill, err := h.millService.GetMill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(mill))
}

// CreateMill registers a mill
// @Summary      Create mill
// @Tags         mills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateMillRequest  true  "Mill payload"
// @Success      201      {object}  response.Response{data=model.Mill}
// @Failure      400      {object}  response.Response
// @Router       /api/mills [post]
func (h *MillHandler) CreateMill(c *gin.Context) {
	var req service.CreateMillRequest
	if !bindJSON(c, &req) {
		return
	}

	mill, err := h.millService.CreateMill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(mill))
}

// Performance returns raw material and fabric totals per mill
// @Summary      Mill performance
// @Tags         mills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.MillPerformance}
// @Router       /api/mills/performance [get]
func (h *MillHandler) Performance(c *gin.Context) {
	performance, err := h.millService.Performance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(performance))
}

// ListRawMaterials returns raw material shipments with their mill name
// @Summary      List raw materials
// @Tags         mills
// @Produce      json
// @Param        mill_id  query     string  false  "Mill ID"
// @Param        status   query     string  false  "Shipment status"
// @Success      200  {object}  response.Response{data=[]service.RawMaterialResponse}
// @Router       /api/mills/raw-materials [get]
func (h *MillHandler) ListRawMaterials(c *gin.Context) {
	materials, err := h.millService.ListRawMaterials(c.Request.Context(), repository.RawMaterialFilter{
		MillID: c.Query("mill_id"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(materials))
}

// GetRawMaterial returns one shipment with its mill name
// @Summary      Get raw material
// @Tags         mills
// @Produce      json
// @Param        id   path      string  true  "Raw material ID"
// @Success      200  {object}  response.Response{data=service.RawMaterialResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/mills/raw-materials/{id} [get]
func (h *MillHandler) GetRawMaterial(c *gin.Context) {
	material, err := h.millService.GetRawMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(material))
}

// CreateRawMaterial records raw material sent to a mill
// @Summary      Create raw material
// @Tags         mills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRawMaterialRequest  true  "Shipment payload"
// @Success      201      {object}  response.Response{data=model.RawMaterial}
// @Failure      400      {object}  response.Response
// @Router       /api/mills/raw-materials [post]
func (h *MillHandler) CreateRawMaterial(c *gin.Context) {
	var req service.CreateRawMaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	material, err := h.millService.CreateRawMaterial(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(material))
}

// UpdateRawMaterial merges the supplied fields into a shipment. Received
// fabric completes the shipment and is added to inventory.
// @Summary      Update raw material
// @Tags         mills
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Raw material ID"
// @Param        payload  body      service.UpdateRawMaterialRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.RawMaterial}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/mills/raw-materials/{id} [put]
func (h *MillHandler) UpdateRawMaterial(c *gin.Context) {
	var req service.UpdateRawMaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	material, err := h.millService.UpdateRawMaterial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(material))
}
