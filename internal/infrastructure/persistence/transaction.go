package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

type txKey struct{}

// GormTransactionManager implements shared.TransactionManager on gorm.
// The transaction handle travels in the context so repositories used
// inside the unit of work all share it.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a transaction manager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

var _ shared.TransactionManager = (*GormTransactionManager)(nil)

// WithinTransaction runs fn inside a transaction. Any error from fn
// rolls back every write performed through the context.
func (m *GormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction bound to ctx, or fallback when
// the call runs outside a unit of work.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
