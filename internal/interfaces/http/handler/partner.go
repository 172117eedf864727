package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apppartner "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/partner"
)

// CustomerHandler exposes the customer directory over HTTP
type CustomerHandler struct {
	BaseHandler
	customers *apppartner.CustomerService
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(customers *apppartner.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{BaseHandler: NewBaseHandler(log), customers: customers}
}

// RegisterRoutes mounts the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// Create adds a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.customers.Create(c.Request.Context(), apppartner.CustomerInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

// Update changes a customer's details
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.customers.Update(c.Request.Context(), id, apppartner.CustomerInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// Get loads one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// List pages through customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter := h.ParseFilter(c)
	views, total, err := h.customers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SupplierHandler exposes the supplier directory over HTTP
type SupplierHandler struct {
	BaseHandler
	suppliers *apppartner.SupplierService
}

// NewSupplierHandler creates a supplier handler
func NewSupplierHandler(suppliers *apppartner.SupplierService, log *zap.Logger) *SupplierHandler {
	return &SupplierHandler{BaseHandler: NewBaseHandler(log), suppliers: suppliers}
}

// RegisterRoutes mounts the supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/:id", h.Get)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

type supplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
}

// Create adds a supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.suppliers.Create(c.Request.Context(), apppartner.SupplierInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

// Update changes a supplier's details
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.suppliers.Update(c.Request.Context(), id, apppartner.SupplierInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// Get loads one supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// List pages through suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	filter := h.ParseFilter(c)
	views, total, err := h.suppliers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
