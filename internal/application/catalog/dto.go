package catalog

import (
	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
)

// CreateProductInput carries the fields needed to create a product
type CreateProductInput struct {
	Name              string
	Description       string
	Unit              string
	CategoryID        *uuid.UUID
	Price             string
	CostPrice         string
	StockQuantity     int64
	LowStockThreshold int64
}

// UpdateProductInput carries the fields needed to update a product
type UpdateProductInput struct {
	Name              string
	Description       string
	Unit              string
	CategoryID        *uuid.UUID
	Price             string
	CostPrice         string
	LowStockThreshold int64
}

// ProductView is the read model returned to callers
type ProductView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Unit              string     `json:"unit"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
	StockQuantity     int64      `json:"stock_quantity"`
	LowStockThreshold int64      `json:"low_stock_threshold"`
	Price             string     `json:"price"`
	CostPrice         string     `json:"cost_price"`
	LowStock          bool       `json:"low_stock"`
}

// NewProductView maps a product entity to its read model
func NewProductView(p *catalog.Product) ProductView {
	return ProductView{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Unit:              string(p.Unit),
		CategoryID:        p.CategoryID,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		Price:             p.Price.StringFixed(2),
		CostPrice:         p.CostPrice.StringFixed(2),
		LowStock:          p.IsLowStock(),
	}
}

// CategoryInput carries the fields needed to create or update a category
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryView is the read model returned to callers
type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewCategoryView maps a category entity to its read model
func NewCategoryView(c *catalog.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name, Description: c.Description}
}
