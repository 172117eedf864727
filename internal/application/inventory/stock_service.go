package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/inventory"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

// StockService implements goods receipts, write-offs and manual stock
// changes. Every mutation locks the product row and runs in its own
// transaction.
type StockService struct {
	products    catalog.ProductRepository
	purchases   inventory.PurchaseOrderRepository
	adjustments inventory.StockAdjustmentRepository
	suppliers   partner.SupplierRepository
	tx          shared.TransactionManager
	events      shared.EventPublisher
	log         *zap.Logger
}

// NewStockService creates a stock service
func NewStockService(
	products catalog.ProductRepository,
	purchases inventory.PurchaseOrderRepository,
	adjustments inventory.StockAdjustmentRepository,
	suppliers partner.SupplierRepository,
	tx shared.TransactionManager,
	events shared.EventPublisher,
	log *zap.Logger,
) *StockService {
	return &StockService{
		products:    products,
		purchases:   purchases,
		adjustments: adjustments,
		suppliers:   suppliers,
		tx:          tx,
		events:      events,
		log:         log,
	}
}

// ReceivePurchase books received goods into stock. The product's cost
// price becomes the unit cost of this delivery and the purchase order
// keeps the derived total cost.
func (s *StockService) ReceivePurchase(ctx context.Context, input ReceivePurchaseInput) (*PurchaseOrderView, error) {
	unitCost, err := valueobject.NewMoneyFromString(input.UnitCost)
	if err != nil {
		return nil, shared.NewValidationError("invalid unit cost: " + input.UnitCost)
	}

	var po *inventory.PurchaseOrder
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.suppliers.FindByID(ctx, input.SupplierID); err != nil {
			return err
		}

		product, err := s.products.FindByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}

		po, err = inventory.NewPurchaseOrder(input.SupplierID, input.ProductID, input.Quantity, unitCost, input.Notes)
		if err != nil {
			return err
		}

		if err := product.ReceiveShipment(input.Quantity, unitCost); err != nil {
			return err
		}
		if err := s.products.Save(ctx, product); err != nil {
			return err
		}
		return s.purchases.Save(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase received",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("product_id", po.ProductID.String()),
		zap.Int64("quantity", po.Quantity),
		zap.String("total_cost", po.TotalCost.StringFixed(2)))

	view := NewPurchaseOrderView(po)
	return &view, nil
}

// AdjustStock writes stock off for spoilage, damage and similar
// reasons. Writing off more than is on hand fails and nothing is
// recorded.
func (s *StockService) AdjustStock(ctx context.Context, input AdjustStockInput) (*StockAdjustmentView, error) {
	var (
		adj    *inventory.StockAdjustment
		events []shared.DomainEvent
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}

		adj, err = inventory.NewStockAdjustment(input.ProductID, input.Quantity, inventory.AdjustmentReason(input.Reason), input.Notes)
		if err != nil {
			return err
		}

		if err := product.RemoveStock(input.Quantity); err != nil {
			return err
		}
		if err := s.products.Save(ctx, product); err != nil {
			return err
		}
		events = append(events, product.DomainEvents()...)
		product.ClearDomainEvents()
		return s.adjustments.Save(ctx, adj)
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, events...); err != nil {
		s.log.Warn("publish adjustment events", zap.Error(err))
	}

	s.log.Info("stock adjusted",
		zap.String("adjustment_id", adj.ID.String()),
		zap.String("product_id", adj.ProductID.String()),
		zap.Int64("quantity", adj.Quantity),
		zap.String("reason", string(adj.Reason)))

	view := NewStockAdjustmentView(adj)
	return &view, nil
}

// AddStock increases a product's stock without touching its cost price
func (s *StockService) AddStock(ctx context.Context, input AddStockInput) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if err := product.AddStock(input.Quantity); err != nil {
			return err
		}
		return s.products.Save(ctx, product)
	})
}

// ListPurchases pages through purchase orders
func (s *StockService) ListPurchases(ctx context.Context, filter shared.Filter) ([]PurchaseOrderView, int64, error) {
	page, err := s.purchases.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]PurchaseOrderView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewPurchaseOrderView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// ListPurchasesByProduct lists receipts for one product
func (s *StockService) ListPurchasesByProduct(ctx context.Context, productID uuid.UUID) ([]PurchaseOrderView, error) {
	pos, err := s.purchases.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	views := make([]PurchaseOrderView, 0, len(pos))
	for i := range pos {
		views = append(views, NewPurchaseOrderView(&pos[i]))
	}
	return views, nil
}

// ListAdjustments pages through stock adjustments
func (s *StockService) ListAdjustments(ctx context.Context, filter shared.Filter) ([]StockAdjustmentView, int64, error) {
	page, err := s.adjustments.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]StockAdjustmentView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewStockAdjustmentView(&page.Items[i]))
	}
	return views, page.Total, nil
}
