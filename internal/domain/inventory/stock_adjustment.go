package inventory

import (
	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// AdjustmentReason classifies why stock was written off
type AdjustmentReason string

const (
	ReasonSpoilage    AdjustmentReason = "SPOILAGE"
	ReasonDamage      AdjustmentReason = "DAMAGE"
	ReasonTheft       AdjustmentReason = "THEFT"
	ReasonInternalUse AdjustmentReason = "INTERNAL_USE"
	ReasonCorrection  AdjustmentReason = "CORRECTION"
)

// IsValid reports whether the reason is a known value
func (r AdjustmentReason) IsValid() bool {
	switch r {
	case ReasonSpoilage, ReasonDamage, ReasonTheft, ReasonInternalUse, ReasonCorrection:
		return true
	}
	return false
}

// StockAdjustment records a downward stock correction outside of sales
type StockAdjustment struct {
	shared.BaseEntity
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Quantity  int64            `gorm:"not null"`
	Reason    AdjustmentReason `gorm:"size:20;not null"`
	Notes     string           `gorm:"type:text"`
}

// TableName returns the database table name
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

// NewStockAdjustment creates a stock adjustment record
func NewStockAdjustment(productID uuid.UUID, quantity int64, reason AdjustmentReason, notes string) (*StockAdjustment, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("adjustment product is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("adjustment quantity must be positive")
	}
	if !reason.IsValid() {
		return nil, shared.NewValidationError("unknown adjustment reason: " + string(reason))
	}

	return &StockAdjustment{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		Reason:     reason,
		Notes:      notes,
	}, nil
}
