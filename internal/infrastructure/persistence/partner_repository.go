package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// GormCustomerRepository implements partner.CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)

// Save persists a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	if err := dbFromContext(ctx, r.db).Save(customer).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewAlreadyExistsError("customer", customer.Name)
		}
		return shared.WrapDomainError(shared.ErrCodeInternal, "save customer", err)
	}
	return nil
}

// FindByID loads a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	err := dbFromContext(ctx, r.db).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("customer", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find customer", err)
	}
	return &customer, nil
}

// FindAll lists customers with optional name search
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[partner.Customer], error) {
	query := dbFromContext(ctx, r.db).Model(&partner.Customer{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return findPage[partner.Customer](query, filter)
}

// Delete removes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&partner.Customer{}, "id = ?", id)
	if result.Error != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "delete customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("customer", id)
	}
	return nil
}

// GormSupplierRepository implements partner.SupplierRepository
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a supplier repository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)

// Save persists a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	if err := dbFromContext(ctx, r.db).Save(supplier).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewAlreadyExistsError("supplier", supplier.Name)
		}
		return shared.WrapDomainError(shared.ErrCodeInternal, "save supplier", err)
	}
	return nil
}

// FindByID loads a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	err := dbFromContext(ctx, r.db).First(&supplier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("supplier", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find supplier", err)
	}
	return &supplier, nil
}

// FindAll lists suppliers with optional name search
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[partner.Supplier], error) {
	query := dbFromContext(ctx, r.db).Model(&partner.Supplier{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return findPage[partner.Supplier](query, filter)
}

// Delete removes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "delete supplier", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("supplier", id)
	}
	return nil
}
