package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// Save persists a product, inserting or updating as needed
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := dbFromContext(ctx, r.db).Save(product).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewAlreadyExistsError("product", product.Name)
		}
		return shared.WrapDomainError(shared.ErrCodeInternal, "save product", err)
	}
	return nil
}

// FindByID loads a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := dbFromContext(ctx, r.db).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("product", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find product", err)
	}
	return &product, nil
}

// FindByIDForUpdate loads a product under FOR UPDATE so concurrent
// stock mutations on the same row serialize. SQLite has no row locks
// and serializes writers at the database level, so the clause is
// skipped there.
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	query := dbFromContext(ctx, r.db)
	if query.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var product catalog.Product
	err := query.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("product", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "lock product", err)
	}
	return &product, nil
}

// FindByName loads a product by its unique name
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	var product catalog.Product
	err := dbFromContext(ctx, r.db).First(&product, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("product", name)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find product", err)
	}
	return &product, nil
}

// FindAll lists products with optional name search
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	query := dbFromContext(ctx, r.db).Model(&catalog.Product{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return findPage[catalog.Product](query, filter)
}

// FindLowStock lists products at or below their threshold
func (r *GormProductRepository) FindLowStock(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	err := dbFromContext(ctx, r.db).
		Where("stock_quantity <= low_stock_threshold").
		Order("stock_quantity ASC").
		Find(&products).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "list low stock products", err)
	}
	return products, nil
}

// Delete removes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return shared.WrapDomainError(shared.ErrCodeInternal, "delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("product", id)
	}
	return nil
}
