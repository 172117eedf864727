package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
)

// GormOrderRepository implements trade.OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// Save persists an order together with its items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	if err := dbFromContext(ctx, r.db).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error; err != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "save order", err)
	}
	return nil
}

// FindByID loads an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	err := dbFromContext(ctx, r.db).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("order", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find order", err)
	}
	return &order, nil
}

// FindAll lists orders matching the filter, items included
func (r *GormOrderRepository) FindAll(ctx context.Context, filter trade.OrderFilter) (*shared.Paginated[trade.Order], error) {
	query := dbFromContext(ctx, r.db).Model(&trade.Order{}).Preload("Items")
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.DeliveryStatus != nil {
		query = query.Where("delivery_status = ?", *filter.DeliveryStatus)
	}
	return findPage[trade.Order](query, filter.Filter)
}

// Delete removes an order and its items
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Delete(&trade.OrderItem{}, "order_id = ?", id).Error; err != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "delete order items", err)
	}

	result := db.Delete(&trade.Order{}, "id = ?", id)
	if result.Error != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("order", id)
	}
	return nil
}
