package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

// PurchaseOrder records a goods receipt from a supplier. TotalCost is
// derived from quantity and unit cost at creation time.
type PurchaseOrder struct {
	shared.BaseEntity
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int64           `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalCost  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Notes      string          `gorm:"type:text"`
}

// TableName returns the database table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a purchase order and derives its total cost
func NewPurchaseOrder(supplierID, productID uuid.UUID, quantity int64, unitCost valueobject.Money, notes string) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("purchase order supplier is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("purchase order product is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("purchase order quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewValidationError("purchase order unit cost cannot be negative")
	}

	return &PurchaseOrder{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitCost:   unitCost.Amount(),
		TotalCost:  unitCost.MulInt(quantity).Amount(),
		Notes:      notes,
	}, nil
}
