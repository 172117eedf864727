package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// CustomerService implements customer directory use cases
type CustomerService struct {
	customers partner.CustomerRepository
	log       *zap.Logger
}

// NewCustomerService creates a customer service
func NewCustomerService(customers partner.CustomerRepository, log *zap.Logger) *CustomerService {
	return &CustomerService{customers: customers, log: log}
}

// Create adds a customer
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*CustomerView, error) {
	customer, err := partner.NewCustomer(input.Name, input.Phone, input.Email, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	view := NewCustomerView(customer)
	return &view, nil
}

// Update changes a customer's contact details
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*CustomerView, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.UpdateDetails(input.Name, input.Phone, input.Email, input.Address); err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	view := NewCustomerView(customer)
	return &view, nil
}

// Get loads one customer
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewCustomerView(customer)
	return &view, nil
}

// List pages through customers
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]CustomerView, int64, error) {
	page, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]CustomerView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewCustomerView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customers.Delete(ctx, id)
}

// SupplierService implements supplier directory use cases
type SupplierService struct {
	suppliers partner.SupplierRepository
	log       *zap.Logger
}

// NewSupplierService creates a supplier service
func NewSupplierService(suppliers partner.SupplierRepository, log *zap.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, log: log}
}

// Create adds a supplier
func (s *SupplierService) Create(ctx context.Context, input SupplierInput) (*SupplierView, error) {
	supplier, err := partner.NewSupplier(input.Name, input.ContactPerson, input.Phone, input.Email, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	view := NewSupplierView(supplier)
	return &view, nil
}

// Update changes a supplier's contact details
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input SupplierInput) (*SupplierView, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.UpdateDetails(input.Name, input.ContactPerson, input.Phone, input.Email, input.Address); err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	view := NewSupplierView(supplier)
	return &view, nil
}

// Get loads one supplier
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*SupplierView, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewSupplierView(supplier)
	return &view, nil
}

// List pages through suppliers
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]SupplierView, int64, error) {
	page, err := s.suppliers.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]SupplierView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewSupplierView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.suppliers.Delete(ctx, id)
}
