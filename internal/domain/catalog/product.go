package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

// Unit is the measurement unit a product is sold in
type Unit string

const (
	UnitPiece Unit = "pcs"
	UnitKilo  Unit = "kg"
	UnitLitre Unit = "ltr"
	UnitBox   Unit = "box"
	UnitMetre Unit = "m"
	UnitDozen Unit = "doz"
)

// IsValid reports whether the unit is a known value
func (u Unit) IsValid() bool {
	switch u {
	case UnitPiece, UnitKilo, UnitLitre, UnitBox, UnitMetre, UnitDozen:
		return true
	}
	return false
}

// DefaultLowStockThreshold applies when no threshold is given
const DefaultLowStockThreshold int64 = 10

// Product is the aggregate root for catalog items and their stock position.
// Price is the current selling price; CostPrice tracks the most recent
// purchase cost and is replaced wholesale on every goods receipt.
type Product struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"size:200;not null;uniqueIndex"`
	Description       string          `gorm:"type:text"`
	Unit              Unit            `gorm:"size:10;not null;default:'pcs'"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index"`
	StockQuantity     int64           `gorm:"not null;default:0"`
	LowStockThreshold int64           `gorm:"not null;default:10"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the database table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product after validating its invariants
func NewProduct(name string, unit Unit, price, costPrice valueobject.Money, stockQuantity, lowStockThreshold int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("product name is required")
	}
	if !unit.IsValid() {
		return nil, shared.NewValidationError("unknown product unit: " + string(unit))
	}
	if price.IsNegative() || price.IsZero() {
		return nil, shared.NewValidationError("product price must be positive")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewValidationError("product cost price cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewValidationError("stock quantity cannot be negative")
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Unit:              unit,
		StockQuantity:     stockQuantity,
		LowStockThreshold: lowStockThreshold,
		Price:             price.Amount(),
		CostPrice:         costPrice.Amount(),
	}, nil
}

// IsLowStock reports whether stock is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

// AddStock increases the stock level by qty
func (p *Product) AddStock(qty int64) error {
	if qty <= 0 {
		return shared.NewValidationError("stock increase must be positive")
	}
	p.StockQuantity += qty
	p.IncrementVersion()
	return nil
}

// RemoveStock decreases the stock level by qty. Removing more than is
// available fails with an insufficient stock error. Raises a low stock
// alert whenever the resulting level is at or below the threshold.
func (p *Product) RemoveStock(qty int64) error {
	if qty <= 0 {
		return shared.NewValidationError("stock decrease must be positive")
	}
	if qty > p.StockQuantity {
		return shared.NewInsufficientStockError(p.Name, p.StockQuantity, qty)
	}

	p.StockQuantity -= qty
	p.IncrementVersion()

	if p.IsLowStock() {
		p.AddDomainEvent(NewLowStockAlertEvent(p))
	}
	return nil
}

// ReceiveShipment books received goods into stock and replaces the
// cost price with the unit cost of this delivery.
func (p *Product) ReceiveShipment(qty int64, unitCost valueobject.Money) error {
	if qty <= 0 {
		return shared.NewValidationError("received quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewValidationError("unit cost cannot be negative")
	}
	p.StockQuantity += qty
	p.CostPrice = unitCost.Amount()
	p.IncrementVersion()
	return nil
}

// UpdateDetails changes descriptive fields and pricing
func (p *Product) UpdateDetails(name, description string, unit Unit, price, costPrice valueobject.Money, lowStockThreshold int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("product name is required")
	}
	if !unit.IsValid() {
		return shared.NewValidationError("unknown product unit: " + string(unit))
	}
	if price.IsNegative() || price.IsZero() {
		return shared.NewValidationError("product price must be positive")
	}
	if costPrice.IsNegative() {
		return shared.NewValidationError("cost price cannot be negative")
	}
	if lowStockThreshold <= 0 {
		return shared.NewValidationError("low stock threshold must be positive")
	}

	p.Name = name
	p.Description = description
	p.Unit = unit
	p.Price = price.Amount()
	p.CostPrice = costPrice.Amount()
	p.LowStockThreshold = lowStockThreshold
	p.IncrementVersion()
	return nil
}

// AssignCategory places the product under a category
func (p *Product) AssignCategory(categoryID uuid.UUID) {
	p.CategoryID = &categoryID
	p.IncrementVersion()
}

// ClearCategory detaches the product from its category
func (p *Product) ClearCategory() {
	p.CategoryID = nil
	p.IncrementVersion()
}

// StockValue returns the stock level priced at current cost
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(p.StockQuantity))
}
