package shared

import "context"

// Filter carries generic listing options for repositories
type Filter struct {
	Limit   int
	Offset  int
	OrderBy string
	Search  string
}

// Paginated wraps a page of results with the total count
type Paginated[T any] struct {
	Items  []T
	Total  int64
	Limit  int
	Offset int
}

// TransactionManager runs a unit of work inside a database transaction.
// The context passed to fn carries the transaction; repositories resolve
// it and all writes either commit together or roll back together.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
