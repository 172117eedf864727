package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// ProductRepository persists products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate loads a product under a row lock so that
	// concurrent stock mutations serialize. Must run inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Product], error)
	FindLowStock(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository persists categories
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Category], error)
	Delete(ctx context.Context, id uuid.UUID) error
}
