package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// GormCategoryRepository implements catalog.CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

// Save persists a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	if err := dbFromContext(ctx, r.db).Save(category).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewAlreadyExistsError("category", category.Name)
		}
		return shared.WrapDomainError(shared.ErrCodeInternal, "save category", err)
	}
	return nil
}

// FindByID loads a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	err := dbFromContext(ctx, r.db).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("category", id)
		}
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "find category", err)
	}
	return &category, nil
}

// FindAll lists categories
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Category], error) {
	query := dbFromContext(ctx, r.db).Model(&catalog.Category{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return findPage[catalog.Category](query, filter)
}

// Delete removes a category and detaches its products. Both writes
// happen in one transaction so products are never detached from a
// category that still exists.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return shared.WrapDomainError(shared.ErrCodeInternal, "detach category products", err)
		}

		result := tx.Delete(&catalog.Category{}, "id = ?", id)
		if result.Error != nil {
			return shared.WrapDomainError(shared.ErrCodeInternal, "delete category", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("category", id)
		}
		return nil
	})
}
