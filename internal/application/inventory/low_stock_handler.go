package inventory

import (
	"context"
	"fmt"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Notifier delivers operational alerts to whoever is on duty
type Notifier interface {
	Notify(ctx context.Context, subject, message string, fields map[string]interface{}) error
}

// LowStockHandler turns low stock events into notifications
type LowStockHandler struct {
	notifier Notifier
}

// NewLowStockHandler creates a low stock handler
func NewLowStockHandler(notifier Notifier) *LowStockHandler {
	return &LowStockHandler{notifier: notifier}
}

var _ shared.EventHandler = (*LowStockHandler)(nil)

// CanHandle reports whether this handler processes the event type
func (h *LowStockHandler) CanHandle(eventType string) bool {
	return eventType == catalog.EventTypeLowStockAlert
}

// Handle sends a notification for a low stock alert
func (h *LowStockHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	alert, ok := event.(catalog.LowStockAlertEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}
	return h.notifier.Notify(ctx,
		"Low stock alert",
		fmt.Sprintf("%s is down to %d (threshold %d)", alert.ProductName, alert.StockQuantity, alert.Threshold),
		map[string]interface{}{
			"product_id": alert.AggregateID().String(),
			"stock":      alert.StockQuantity,
			"threshold":  alert.Threshold,
		},
	)
}
