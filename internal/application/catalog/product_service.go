package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

// ProductService implements catalog product use cases
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	log        *zap.Logger
}

// NewProductService creates a product service
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository, log *zap.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, log: log}
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductView, error) {
	price, err := valueobject.NewMoneyFromString(input.Price)
	if err != nil {
		return nil, shared.NewValidationError("invalid price: " + input.Price)
	}
	costPrice, err := valueobject.NewMoneyFromString(input.CostPrice)
	if err != nil {
		return nil, shared.NewValidationError("invalid cost price: " + input.CostPrice)
	}

	product, err := catalog.NewProduct(input.Name, catalog.Unit(input.Unit), price, costPrice, input.StockQuantity, input.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	product.Description = input.Description

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(*input.CategoryID)
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	view := NewProductView(product)
	return &view, nil
}

// Update changes a product's details and category assignment
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := valueobject.NewMoneyFromString(input.Price)
	if err != nil {
		return nil, shared.NewValidationError("invalid price: " + input.Price)
	}
	costPrice, err := valueobject.NewMoneyFromString(input.CostPrice)
	if err != nil {
		return nil, shared.NewValidationError("invalid cost price: " + input.CostPrice)
	}

	if err := product.UpdateDetails(input.Name, input.Description, catalog.Unit(input.Unit), price, costPrice, input.LowStockThreshold); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(*input.CategoryID)
	} else {
		product.ClearCategory()
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	view := NewProductView(product)
	return &view, nil
}

// Get loads one product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewProductView(product)
	return &view, nil
}

// List pages through products
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductView, int64, error) {
	page, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewProductView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// ListLowStock returns products at or below their threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductView, error) {
	products, err := s.products.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i]))
	}
	return views, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}
