package partner

import (
	"strings"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Customer is a buyer the business sells and delivers to
type Customer struct {
	shared.BaseEntity
	Name    string `gorm:"size:200;not null;uniqueIndex"`
	Phone   string `gorm:"size:40"`
	Email   string `gorm:"size:200"`
	Address string `gorm:"type:text"`
}

// TableName returns the database table name
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer with a non-empty name
func NewCustomer(name, phone, email, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("customer name is required")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Email:      email,
		Address:    address,
	}, nil
}

// UpdateDetails changes the customer contact information
func (c *Customer) UpdateDetails(name, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("customer name is required")
	}
	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	return nil
}
