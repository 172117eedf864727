package partner

import (
	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
)

// CustomerInput carries the fields needed to create or update a customer
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// CustomerView is the read model returned to callers
type CustomerView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

// NewCustomerView maps a customer entity to its read model
func NewCustomerView(c *partner.Customer) CustomerView {
	return CustomerView{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

// SupplierInput carries the fields needed to create or update a supplier
type SupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

// SupplierView is the read model returned to callers
type SupplierView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
}

// NewSupplierView maps a supplier entity to its read model
func NewSupplierView(s *partner.Supplier) SupplierView {
	return SupplierView{ID: s.ID, Name: s.Name, ContactPerson: s.ContactPerson, Phone: s.Phone, Email: s.Email, Address: s.Address}
}
