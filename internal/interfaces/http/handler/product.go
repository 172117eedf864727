package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appcatalog "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/catalog"
)

// ProductHandler exposes the product catalog over HTTP
type ProductHandler struct {
	BaseHandler
	products *appcatalog.ProductService
}

// NewProductHandler creates a product handler
func NewProductHandler(products *appcatalog.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(log), products: products}
}

// RegisterRoutes mounts the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/low-stock", h.ListLowStock)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

type createProductRequest struct {
	Name              string     `json:"name" binding:"required"`
	Description       string     `json:"description"`
	Unit              string     `json:"unit" binding:"required"`
	CategoryID        *uuid.UUID `json:"category_id"`
	Price             string     `json:"price" binding:"required"`
	CostPrice         string     `json:"cost_price" binding:"required"`
	StockQuantity     int64      `json:"stock_quantity" binding:"gte=0"`
	LowStockThreshold int64      `json:"low_stock_threshold" binding:"gte=0"`
}

// Create adds a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.products.Create(c.Request.Context(), appcatalog.CreateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Unit:              req.Unit,
		CategoryID:        req.CategoryID,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

type updateProductRequest struct {
	Name              string     `json:"name" binding:"required"`
	Description       string     `json:"description"`
	Unit              string     `json:"unit" binding:"required"`
	CategoryID        *uuid.UUID `json:"category_id"`
	Price             string     `json:"price" binding:"required"`
	CostPrice         string     `json:"cost_price" binding:"required"`
	LowStockThreshold int64      `json:"low_stock_threshold" binding:"gt=0"`
}

// Update changes a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.products.Update(c.Request.Context(), id, appcatalog.UpdateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Unit:              req.Unit,
		CategoryID:        req.CategoryID,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// Get loads one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// List pages through products
func (h *ProductHandler) List(c *gin.Context) {
	filter := h.ParseFilter(c)
	views, total, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

// ListLowStock lists products at or below their threshold
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	views, err := h.products.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, views)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
