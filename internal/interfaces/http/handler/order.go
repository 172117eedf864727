package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apptrade "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/trade"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
)

// OrderHandler exposes order placement and maintenance over HTTP
type OrderHandler struct {
	BaseHandler
	orders *apptrade.OrderService
}

// NewOrderHandler creates an order handler
func NewOrderHandler(orders *apptrade.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{BaseHandler: NewBaseHandler(log), orders: orders}
}

// RegisterRoutes mounts the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Place)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.DELETE("/:id", h.Delete)
	}
}

type orderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	CustomerID     uuid.UUID          `json:"customer_id" binding:"required"`
	Notes          string             `json:"notes"`
	PaymentStatus  string             `json:"payment_status" binding:"omitempty,oneof=PENDING PAID"`
	DeliveryStatus string             `json:"delivery_status" binding:"omitempty,oneof=PENDING DELIVERED CANCELLED"`
	Lines          []orderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Place creates an order with atomic stock reservation
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	lines := make([]apptrade.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, apptrade.OrderLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	view, err := h.orders.PlaceOrder(c.Request.Context(), apptrade.PlaceOrderInput{
		CustomerID:     req.CustomerID,
		Notes:          req.Notes,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
		Lines:          lines,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, view)
}

type updateOrderStatusRequest struct {
	PaymentStatus  *string `json:"payment_status"`
	DeliveryStatus *string `json:"delivery_status"`
}

// UpdateStatus changes payment and/or delivery status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}
	if req.PaymentStatus == nil && req.DeliveryStatus == nil {
		h.BadRequest(c, "nothing to update")
		return
	}

	view, err := h.orders.UpdateStatus(c.Request.Context(), id, apptrade.UpdateOrderStatusInput{
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// Get loads one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, view)
}

// List pages through orders with optional status filters
func (h *OrderHandler) List(c *gin.Context) {
	filter := trade.OrderFilter{Filter: h.ParseFilter(c)}

	if v := c.Query("payment_status"); v != "" {
		status := trade.PaymentStatus(v)
		if !status.IsValid() {
			h.BadRequest(c, "unknown payment_status: "+v)
			return
		}
		filter.PaymentStatus = &status
	}
	if v := c.Query("delivery_status"); v != "" {
		status := trade.DeliveryStatus(v)
		if !status.IsValid() {
			h.BadRequest(c, "unknown delivery_status: "+v)
			return
		}
		filter.DeliveryStatus = &status
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "invalid customer_id")
			return
		}
		filter.CustomerID = &id
	}

	views, total, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, views, total, filter.Limit, filter.Offset)
}

// Delete removes an order without restoring stock
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
