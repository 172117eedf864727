package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// OrderFilter narrows order listings
type OrderFilter struct {
	shared.Filter
	CustomerID     *uuid.UUID
	PaymentStatus  *PaymentStatus
	DeliveryStatus *DeliveryStatus
}

// OrderRepository persists orders together with their items
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) (*shared.Paginated[Order], error)
	Delete(ctx context.Context, id uuid.UUID) error
}
