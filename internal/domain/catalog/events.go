package catalog

import (
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Event types raised by the catalog context
const (
	EventTypeLowStockAlert = "catalog.product.low_stock"
)

// LowStockAlertEvent fires when a product's stock level falls to or
// below its low stock threshold.
type LowStockAlertEvent struct {
	shared.BaseDomainEvent
	ProductName   string
	StockQuantity int64
	Threshold     int64
}

// NewLowStockAlertEvent creates a low stock alert for the given product
func NewLowStockAlertEvent(p *Product) LowStockAlertEvent {
	return LowStockAlertEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLowStockAlert, p.ID),
		ProductName:     p.Name,
		StockQuantity:   p.StockQuantity,
		Threshold:       p.LowStockThreshold,
	}
}
