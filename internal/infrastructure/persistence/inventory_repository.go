package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/inventory"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// GormPurchaseOrderRepository implements inventory.PurchaseOrderRepository
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a purchase order repository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

var _ inventory.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

// Save persists a purchase order
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *inventory.PurchaseOrder) error {
	if err := dbFromContext(ctx, r.db).Save(po).Error; err != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "save purchase order", err)
	}
	return nil
}

// FindByID loads a purchase order by its ID
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.PurchaseOrder, error) {
	var po inventory.PurchaseOrder
	err := dbFromContext(ctx, r.db).First(&po, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("purchase order", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find purchase order", err)
	}
	return &po, nil
}

// FindAll lists purchase orders
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[inventory.PurchaseOrder], error) {
	query := dbFromContext(ctx, r.db).Model(&inventory.PurchaseOrder{})
	return findPage[inventory.PurchaseOrder](query, filter)
}

// FindByProduct lists receipts for one product, newest first
func (r *GormPurchaseOrderRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.PurchaseOrder, error) {
	var pos []inventory.PurchaseOrder
	err := dbFromContext(ctx, r.db).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "list purchase orders", err)
	}
	return pos, nil
}

// GormStockAdjustmentRepository implements inventory.StockAdjustmentRepository
type GormStockAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormStockAdjustmentRepository creates a stock adjustment repository
func NewGormStockAdjustmentRepository(db *gorm.DB) *GormStockAdjustmentRepository {
	return &GormStockAdjustmentRepository{db: db}
}

var _ inventory.StockAdjustmentRepository = (*GormStockAdjustmentRepository)(nil)

// Save persists a stock adjustment
func (r *GormStockAdjustmentRepository) Save(ctx context.Context, adj *inventory.StockAdjustment) error {
	if err := dbFromContext(ctx, r.db).Save(adj).Error; err != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "save stock adjustment", err)
	}
	return nil
}

// FindByID loads a stock adjustment by its ID
func (r *GormStockAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockAdjustment, error) {
	var adj inventory.StockAdjustment
	err := dbFromContext(ctx, r.db).First(&adj, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("stock adjustment", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find stock adjustment", err)
	}
	return &adj, nil
}

// FindAll lists stock adjustments
func (r *GormStockAdjustmentRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[inventory.StockAdjustment], error) {
	query := dbFromContext(ctx, r.db).Model(&inventory.StockAdjustment{})
	return findPage[inventory.StockAdjustment](query, filter)
}
