package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// isDuplicateKey reports whether err is a unique constraint violation.
// The string checks cover drivers running without gorm's error
// translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// applyFilter applies pagination and ordering to a query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.OrderBy != "" {
		query = query.Order(filter.OrderBy)
	} else {
		query = query.Order("created_at DESC")
	}
	return query
}

// findPage runs a count plus a filtered find and wraps the result
func findPage[T any](query *gorm.DB, filter shared.Filter) (*shared.Paginated[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "count records", err)
	}

	var items []T
	if err := applyFilter(query.Session(&gorm.Session{}), filter).Find(&items).Error; err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "list records", err)
	}

	return &shared.Paginated[T]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
