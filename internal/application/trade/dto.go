package trade

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
)

// OrderLineInput is one requested line of a new order
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int64
}

// PlaceOrderInput carries everything needed to place an order.
// Empty statuses default to pending.
type PlaceOrderInput struct {
	CustomerID     uuid.UUID
	Notes          string
	PaymentStatus  string
	DeliveryStatus string
	Lines          []OrderLineInput
}

// UpdateOrderStatusInput changes payment and/or delivery status.
// Nil fields are left untouched.
type UpdateOrderStatusInput struct {
	PaymentStatus  *string
	DeliveryStatus *string
}

// OrderItemView is the read model of one order line
type OrderItemView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	LineTotal   string    `json:"line_total"`
}

// OrderView is the read model of an order
type OrderView struct {
	ID             uuid.UUID       `json:"id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	PaymentStatus  string          `json:"payment_status"`
	DeliveryStatus string          `json:"delivery_status"`
	TotalAmount    string          `json:"total_amount"`
	Notes          string          `json:"notes,omitempty"`
	Items          []OrderItemView `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewOrderView maps an order aggregate to its read model
func NewOrderView(o *trade.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, OrderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			LineTotal:   item.LineTotal().StringFixed(2),
		})
	}
	return OrderView{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		PaymentStatus:  string(o.PaymentStatus),
		DeliveryStatus: string(o.DeliveryStatus),
		TotalAmount:    o.TotalAmount.StringFixed(2),
		Notes:          o.Notes,
		Items:          items,
		CreatedAt:      o.CreatedAt,
	}
}
