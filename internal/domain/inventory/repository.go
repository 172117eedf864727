package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// PurchaseOrderRepository persists purchase orders
type PurchaseOrderRepository interface {
	Save(ctx context.Context, po *PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[PurchaseOrder], error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]PurchaseOrder, error)
}

// StockAdjustmentRepository persists stock adjustments
type StockAdjustmentRepository interface {
	Save(ctx context.Context, adj *StockAdjustment) error
	FindByID(ctx context.Context, id uuid.UUID) (*StockAdjustment, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[StockAdjustment], error)
}
