package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

// PhoneLookupResponse repeats found next to success.
type PhoneLookupResponse struct {
	response.Response
	Found bool `json:"found"`
}

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/api/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/search", h.SearchByPhone)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

// ListCustomers returns customers with optional search/business type filters
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        search         query     string  false  "Name (case-insensitive) or phone substring"
// @Param        business_type  query     string  false  "Exact business type"
// @Success      200  {object}  response.Response{data=[]model.Customer}
// @Router       /api/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context(), repository.CustomerFilter{
		Search:       c.Query("search"),
		BusinessType: c.Query("business_type"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(customers))
}

// SearchByPhone looks a customer up by exact phone number
// @Summary      Find customer by phone
// @Tags         customers
// @Produce      json
// @Param        phone  query     string  true  "Exact phone number"
// @Success      200    {object}  handler.PhoneLookupResponse{data=service.PhoneLookup}
// @Failure      400    {object}  response.Response
// @Router       /api/customers/search [get]
func (h *CustomerHandler) SearchByPhone(c *gin.Context) {
	result, err := h.customerService.SearchByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PhoneLookupResponse{Response: response.Success(result), Found: result.Found})
}

// GetCustomer returns one customer
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response{data=model.Customer}
// @Failure      404  {object}  response.Response
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(customer))
}

// CreateCustomer creates a customer with a unique phone
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCustomerRequest  true  "Customer payload"
// @Success      201      {object}  response.Response{data=model.Customer}
// @Failure      400      {object}  response.Response
// @Router       /api/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(customer))
}

// UpdateCustomer merges the supplied fields into a customer
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Customer ID"
// @Param        payload  body      service.UpdateCustomerRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.Customer}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(customer))
}

// DeleteCustomer removes a customer. Their orders and bills are kept.
// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Customer deleted"))
}
