package partner

import (
	"strings"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// Supplier is a vendor the business purchases stock from
type Supplier struct {
	shared.BaseEntity
	Name          string `gorm:"size:200;not null;uniqueIndex"`
	ContactPerson string `gorm:"size:200"`
	Phone         string `gorm:"size:40"`
	Email         string `gorm:"size:200"`
	Address       string `gorm:"type:text"`
}

// TableName returns the database table name
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a supplier with a non-empty name
func NewSupplier(name, contactPerson, phone, email, address string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("supplier name is required")
	}
	return &Supplier{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Email:         email,
		Address:       address,
	}, nil
}

// UpdateDetails changes the supplier contact information
func (s *Supplier) UpdateDetails(name, contactPerson, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("supplier name is required")
	}
	s.Name = name
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.Address = address
	return nil
}
