package trade

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
)

// OrderService implements order placement and maintenance
type OrderService struct {
	orders    trade.OrderRepository
	products  catalog.ProductRepository
	customers partner.CustomerRepository
	tx        shared.TransactionManager
	events    shared.EventPublisher
	log       *zap.Logger
}

// NewOrderService creates an order service
func NewOrderService(
	orders trade.OrderRepository,
	products catalog.ProductRepository,
	customers partner.CustomerRepository,
	tx shared.TransactionManager,
	events shared.EventPublisher,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		customers: customers,
		tx:        tx,
		events:    events,
		log:       log,
	}
}

// PlaceOrder creates an order and reserves stock for every line in a
// single transaction. Each product row is locked before its stock is
// checked, the unit price is snapshotted from the product at this
// moment, and any failure rolls the whole order back. Domain events
// raised during the reservation are published after the commit.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewValidationError("order must contain at least one item")
	}

	var (
		order  *trade.Order
		events []shared.DomainEvent
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
			return err
		}

		var err error
		order, err = trade.NewOrder(input.CustomerID, input.Notes,
			trade.PaymentStatus(input.PaymentStatus), trade.DeliveryStatus(input.DeliveryStatus))
		if err != nil {
			return err
		}

		for _, line := range input.Lines {
			product, err := s.products.FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if err := product.RemoveStock(line.Quantity); err != nil {
				return err
			}
			if err := order.AddItem(product.ID, product.Name, line.Quantity, valueobject.NewMoney(product.Price)); err != nil {
				return err
			}
			if err := s.products.Save(ctx, product); err != nil {
				return err
			}
			events = append(events, product.DomainEvents()...)
			product.ClearDomainEvents()
		}

		if err := s.orders.Save(ctx, order); err != nil {
			return err
		}
		events = append(events, trade.NewOrderPlacedEvent(order))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Alerts only fire for orders that actually committed.
	if err := s.events.Publish(ctx, events...); err != nil {
		s.log.Warn("publish order events", zap.Error(err))
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", order.CustomerID.String()),
		zap.String("total", order.TotalAmount.StringFixed(2)),
		zap.Int("items", len(order.Items)))

	view := NewOrderView(order)
	return &view, nil
}

// UpdateStatus changes payment and/or delivery status of an order
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateOrderStatusInput) (*OrderView, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PaymentStatus != nil {
		if err := order.UpdatePaymentStatus(trade.PaymentStatus(*input.PaymentStatus)); err != nil {
			return nil, err
		}
	}
	if input.DeliveryStatus != nil {
		if err := order.UpdateDeliveryStatus(trade.DeliveryStatus(*input.DeliveryStatus)); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	view := NewOrderView(order)
	return &view, nil
}

// Get loads one order with its items
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewOrderView(order)
	return &view, nil
}

// List pages through orders
func (s *OrderService) List(ctx context.Context, filter trade.OrderFilter) ([]OrderView, int64, error) {
	page, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]OrderView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, NewOrderView(&page.Items[i]))
	}
	return views, page.Total, nil
}

// Delete removes an order and its items. Stock reserved by the order
// is not restored.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order deleted", zap.String("order_id", id.String()))
	return nil
}
