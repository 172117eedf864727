package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appinventory "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/inventory"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/inventory"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/event"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/persistence"
)

type recordedAlert struct {
	subject string
	fields  map[string]interface{}
}

type recordingNotifier struct {
	alerts []recordedAlert
}

func (n *recordingNotifier) Notify(_ context.Context, subject, _ string, fields map[string]interface{}) error {
	n.alerts = append(n.alerts, recordedAlert{subject: subject, fields: fields})
	return nil
}

type testEnv struct {
	db       *gorm.DB
	service  *OrderService
	products catalog.ProductRepository
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Category{}, &catalog.Product{},
		&partner.Customer{}, &partner.Supplier{},
		&trade.Order{}, &trade.OrderItem{},
		&inventory.PurchaseOrder{}, &inventory.StockAdjustment{},
	))

	log := zap.NewNop()
	notifier := &recordingNotifier{}
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(catalog.EventTypeLowStockAlert, appinventory.NewLowStockHandler(notifier))

	products := persistence.NewGormProductRepository(db)
	service := NewOrderService(
		persistence.NewGormOrderRepository(db),
		products,
		persistence.NewGormCustomerRepository(db),
		persistence.NewGormTransactionManager(db),
		bus,
		log,
	)

	return &testEnv{db: db, service: service, products: products, notifier: notifier}
}

func (e *testEnv) createCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Corner Shop", "555-0101", "", "12 High St")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) createProduct(t *testing.T, name string, price string, stock, threshold int64) *catalog.Product {
	t.Helper()
	priceVal, err := valueobject.NewMoneyFromString(price)
	require.NoError(t, err)
	cost, err := valueobject.NewMoneyFromString("2.00")
	require.NoError(t, err)
	product, err := catalog.NewProduct(name, catalog.UnitPiece, priceVal, cost, stock, threshold)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) stockOf(t *testing.T, id uuid.UUID) int64 {
	t.Helper()
	product, err := e.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	return product.StockQuantity
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func TestPlaceOrderReservesStockAndComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Basmati Rice", "9.99", 5, 10)

	view, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, "29.97", view.TotalAmount)
	assert.Equal(t, string(trade.PaymentPending), view.PaymentStatus)
	assert.Equal(t, string(trade.DeliveryPending), view.DeliveryStatus)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "9.99", view.Items[0].UnitPrice)

	assert.Equal(t, int64(2), env.stockOf(t, product.ID))

	// 2 <= threshold 10, so the advisory alert fired after commit.
	require.Len(t, env.notifier.alerts, 1)
	assert.Equal(t, "Low stock alert", env.notifier.alerts[0].subject)
	assert.Equal(t, int64(2), env.notifier.alerts[0].fields["stock"])
}

func TestPlaceOrderWithSuppliedStatuses(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Basmati Rice", "9.99", 50, 10)

	// A walk-in sale is paid and delivered in the same call.
	view, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID:     customer.ID,
		PaymentStatus:  string(trade.PaymentPaid),
		DeliveryStatus: string(trade.DeliveryDelivered),
		Lines:          []OrderLineInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(trade.PaymentPaid), view.PaymentStatus)
	assert.Equal(t, string(trade.DeliveryDelivered), view.DeliveryStatus)
	assert.Equal(t, int64(48), env.stockOf(t, product.ID))
}

func TestPlaceOrderRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Basmati Rice", "9.99", 50, 10)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID:    customer.ID,
		PaymentStatus: "SHIPPED",
		Lines:         []OrderLineInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInvalidInput))
	// The rejected order reserved nothing.
	assert.Equal(t, int64(50), env.stockOf(t, product.ID))
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Sunflower Oil", "4.50", 4, 2)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 10}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInsufficientStock))
	assert.Contains(t, err.Error(), "available 4")
	assert.Contains(t, err.Error(), "requested 10")

	assert.Equal(t, int64(4), env.stockOf(t, product.ID))
	assert.Zero(t, env.countRows(t, &trade.Order{}))
	assert.Zero(t, env.countRows(t, &trade.OrderItem{}))
	assert.Empty(t, env.notifier.alerts)
}

func TestPlaceOrderRollsBackAllLinesWhenOneFails(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	ok := env.createProduct(t, "Flour", "1.20", 100, 10)
	scarce := env.createProduct(t, "Saffron", "45.00", 1, 1)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines: []OrderLineInput{
			{ProductID: ok.ID, Quantity: 5},
			{ProductID: scarce.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInsufficientStock))

	// The first line's decrement must be undone too.
	assert.Equal(t, int64(100), env.stockOf(t, ok.ID))
	assert.Equal(t, int64(1), env.stockOf(t, scarce.ID))
	assert.Zero(t, env.countRows(t, &trade.Order{}))
	assert.Zero(t, env.countRows(t, &trade.OrderItem{}))
}

func TestPlaceOrderCombinedLinesForSameProduct(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Sugar", "2.10", 5, 2)

	// Each line alone fits, together they oversell.
	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines: []OrderLineInput{
			{ProductID: product.ID, Quantity: 3},
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInsufficientStock))
	assert.Equal(t, int64(5), env.stockOf(t, product.ID))
	assert.Zero(t, env.countRows(t, &trade.Order{}))
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Salt", "0.80", 50, 5)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: uuid.New(),
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, int64(50), env.stockOf(t, product.ID))
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestPlaceOrderRequiresLines(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{CustomerID: customer.ID})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInvalidInput))
}

func TestPlaceOrderSnapshotsPriceAtPlacement(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Olive Oil", "10.00", 20, 2)

	view, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Raise the price after the sale; the stored order keeps the old one.
	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	newPrice, perr := valueobject.NewMoneyFromString("12.00")
	require.NoError(t, perr)
	require.NoError(t, stored.UpdateDetails(stored.Name, "", stored.Unit, newPrice, newPrice, stored.LowStockThreshold))
	require.NoError(t, env.products.Save(context.Background(), stored))

	reloaded, err := env.service.Get(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.00", reloaded.Items[0].UnitPrice)
	assert.Equal(t, "20.00", reloaded.TotalAmount)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Tea", "3.00", 30, 2)

	view, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	paid := string(trade.PaymentPaid)
	delivered := string(trade.DeliveryDelivered)
	updated, err := env.service.UpdateStatus(context.Background(), view.ID, UpdateOrderStatusInput{
		PaymentStatus:  &paid,
		DeliveryStatus: &delivered,
	})
	require.NoError(t, err)
	assert.Equal(t, paid, updated.PaymentStatus)
	assert.Equal(t, delivered, updated.DeliveryStatus)

	bogus := "SHIPPED"
	_, err = env.service.UpdateStatus(context.Background(), view.ID, UpdateOrderStatusInput{DeliveryStatus: &bogus})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInvalidInput))
}

func TestListFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Coffee", "7.00", 100, 2)

	for i := 0; i < 3; i++ {
		_, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
			CustomerID: customer.ID,
			Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	pending := trade.PaymentPending
	views, total, err := env.service.List(context.Background(), trade.OrderFilter{PaymentStatus: &pending})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, views, 3)

	paid := trade.PaymentPaid
	_, total, err = env.service.List(context.Background(), trade.OrderFilter{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDeleteOrderKeepsStockReserved(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	product := env.createProduct(t, "Honey", "6.00", 10, 2)

	view, err := env.service.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customer.ID,
		Lines:      []OrderLineInput{{ProductID: product.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, env.service.Delete(context.Background(), view.ID))

	assert.Zero(t, env.countRows(t, &trade.Order{}))
	assert.Zero(t, env.countRows(t, &trade.OrderItem{}))
	// Deleting the record does not return stock to the shelf.
	assert.Equal(t, int64(6), env.stockOf(t, product.ID))

	_, err = env.service.Get(context.Background(), view.ID)
	assert.True(t, shared.IsNotFound(err))
}
