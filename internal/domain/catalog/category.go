package catalog

import (
	"strings"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Category groups products for browsing and reporting
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"size:120;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the database table name
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category with a non-empty name
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("category name is required")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Rename updates the category name and description
func (c *Category) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("category name is required")
	}
	c.Name = name
	c.Description = description
	return nil
}
