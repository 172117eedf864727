package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appinventory "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/inventory"
)

// StockHandler exposes purchases, adjustments and manual stock changes
type StockHandler struct {
	BaseHandler
	stock *appinventory.StockService
}

// NewStockHandler creates a stock handler
func NewStockHandler(stock *appinventory.StockService, log *zap.Logger) *StockHandler {
	return &StockHandler{BaseHandler: NewBaseHandler(log), stock: stock}
}

// RegisterRoutes mounts the purchasing and adjustment routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.ReceivePurchase)
		purchases.GET("", h.ListPurchases)
	}
	adjustments := rg.Group("/adjustments")
	{
		adjustments.POST("", h.AdjustStock)
		adjustments.GET("", h.ListAdjustments)
	}
	rg.POST("/products/:id/stock", h.AddStock)
	rg.GET("/products/:id/purchases", h.ListProductPurchases)
}

type receivePurchaseRequest struct {
	SupplierID uuid.UUID `json:"supplier_id" binding:"required"`
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	Quantity   int64     `json:"quantity" binding:"required,gt=0"`
	UnitCost   string    `json:"unit_cost" binding:"required"`
	Notes      string    `json:"notes"`
}

// ReceivePurchase books a goods receipt
func (h *StockHandler) ReceivePurchase(c *gin.Context) {
	var req receivePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.stock.ReceivePurchase(c.Request.Context(), appinventory.ReceivePurchaseInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

// ListPurchases pages through purchase orders
func (h *StockHandler) ListPurchases(c *gin.Context) {
	filter := h.ParseFilter(c)
	views, total, err := h.stock.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

// ListProductPurchases lists receipts for one product
func (h *StockHandler) ListProductPurchases(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.stock.ListPurchasesByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, views)
}

type adjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
	Reason    string    `json:"reason" binding:"required"`
	Notes     string    `json:"notes"`
}

// AdjustStock writes stock off
func (h *StockHandler) AdjustStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	view, err := h.stock.AdjustStock(c.Request.Context(), appinventory.AdjustStockInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

// ListAdjustments pages through stock adjustments
func (h *StockHandler) ListAdjustments(c *gin.Context) {
	filter := h.ParseFilter(c)
	views, total, err := h.stock.ListAdjustments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

type addStockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// AddStock increases a product's stock manually
func (h *StockHandler) AddStock(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req addStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	if err := h.stock.AddStock(c.Request.Context(), appinventory.AddStockInput{
		ProductID: id,
		Quantity:  req.Quantity,
	}); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
