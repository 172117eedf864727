package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
)

// CategoryService implements category use cases
type CategoryService struct {
	categories catalog.CategoryRepository
	log        *zap.Logger
}

// NewCategoryService creates a category service
func NewCategoryService(categories catalog.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

// Create adds a new category
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*CategoryView, error) {
	category, err := catalog.NewCategory(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	view := NewCategoryView(category)
	return &view, nil
}

// Update renames a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*CategoryView, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	view := NewCategoryView(category)
	return &view, nil
}

// Get loads one category
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewCategoryView(category)
	return &view, nil
}

// List pages through categories
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) ([]CategoryView, int64, error) {
	page, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]CategoryView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewCategoryView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// Delete removes a category. Products under it are detached, not
// deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.String("category_id", id.String()))
	return nil
}
