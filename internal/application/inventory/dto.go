package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/inventory"
)

// ReceivePurchaseInput records a goods receipt from a supplier
type ReceivePurchaseInput struct {
	SupplierID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int64
	UnitCost   string
	Notes      string
}

// PurchaseOrderView is the read model of a purchase order
type PurchaseOrderView struct {
	ID         uuid.UUID `json:"id"`
	SupplierID uuid.UUID `json:"supplier_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int64     `json:"quantity"`
	UnitCost   string    `json:"unit_cost"`
	TotalCost  string    `json:"total_cost"`
	Notes      string    `json:"notes,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewPurchaseOrderView maps a purchase order to its read model
func NewPurchaseOrderView(po *inventory.PurchaseOrder) PurchaseOrderView {
	return PurchaseOrderView{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		ProductID:  po.ProductID,
		Quantity:   po.Quantity,
		UnitCost:   po.UnitCost.StringFixed(2),
		TotalCost:  po.TotalCost.StringFixed(2),
		Notes:      po.Notes,
		ReceivedAt: po.CreatedAt,
	}
}

// AdjustStockInput records a downward stock correction
type AdjustStockInput struct {
	ProductID uuid.UUID
	Quantity  int64
	Reason    string
	Notes     string
}

// StockAdjustmentView is the read model of a stock adjustment
type StockAdjustmentView struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int64     `json:"quantity"`
	Reason     string    `json:"reason"`
	Notes      string    `json:"notes,omitempty"`
	AdjustedAt time.Time `json:"adjusted_at"`
}

// NewStockAdjustmentView maps a stock adjustment to its read model
func NewStockAdjustmentView(adj *inventory.StockAdjustment) StockAdjustmentView {
	return StockAdjustmentView{
		ID:         adj.ID,
		ProductID:  adj.ProductID,
		Quantity:   adj.Quantity,
		Reason:     string(adj.Reason),
		Notes:      adj.Notes,
		AdjustedAt: adj.CreatedAt,
	}
}

// AddStockInput increases a product's stock without a purchase record
type AddStockInput struct {
	ProductID uuid.UUID
	Quantity  int64
}
