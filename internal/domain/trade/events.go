package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Event types raised by the trade context
const (
	EventTypeOrderPlaced = "trade.order.placed"
)

// OrderPlacedEvent fires after an order has been persisted with its
// stock reservations applied.
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	CustomerID  uuid.UUID
	TotalAmount decimal.Decimal
	ItemCount   int
}

// NewOrderPlacedEvent creates an order placed event
func NewOrderPlacedEvent(o *Order) OrderPlacedEvent {
	return OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, o.ID),
		CustomerID:      o.CustomerID,
		TotalAmount:     o.TotalAmount,
		ItemCount:       len(o.Items),
	}
}
