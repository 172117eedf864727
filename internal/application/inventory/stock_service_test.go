package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/inventory"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/event"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/persistence"
)

type stockEnv struct {
	db       *gorm.DB
	service  *StockService
	products catalog.ProductRepository
	notifier *stubNotifier
}

type stubNotifier struct {
	alerts int
}

func (n *stubNotifier) Notify(context.Context, string, string, map[string]interface{}) error {
	n.alerts++
	return nil
}

func newStockEnv(t *testing.T) *stockEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Product{}, &partner.Supplier{},
		&inventory.PurchaseOrder{}, &inventory.StockAdjustment{},
	))

	log := zap.NewNop()
	notifier := &stubNotifier{}
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(catalog.EventTypeLowStockAlert, NewLowStockHandler(notifier))

	products := persistence.NewGormProductRepository(db)
	service := NewStockService(
		products,
		persistence.NewGormPurchaseOrderRepository(db),
		persistence.NewGormStockAdjustmentRepository(db),
		persistence.NewGormSupplierRepository(db),
		persistence.NewGormTransactionManager(db),
		bus,
		log,
	)
	return &stockEnv{db: db, service: service, products: products, notifier: notifier}
}

func (e *stockEnv) createSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("Wholesale Foods", "Ana", "555-0200", "", "")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(supplier).Error)
	return supplier
}

func (e *stockEnv) createProduct(t *testing.T, stock int64, cost string) *catalog.Product {
	t.Helper()
	price, err := valueobject.NewMoneyFromString("5.00")
	require.NoError(t, err)
	costVal, err := valueobject.NewMoneyFromString(cost)
	require.NoError(t, err)
	product, err := catalog.NewProduct("Basmati Rice", catalog.UnitPiece, price, costVal, stock, 5)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func TestReceivePurchaseUpdatesStockAndCost(t *testing.T) {
	env := newStockEnv(t)
	supplier := env.createSupplier(t)
	product := env.createProduct(t, 10, "2.00")

	view, err := env.service.ReceivePurchase(context.Background(), ReceivePurchaseInput{
		SupplierID: supplier.ID,
		ProductID:  product.ID,
		Quantity:   50,
		UnitCost:   "3.25",
	})
	require.NoError(t, err)

	assert.Equal(t, "162.50", view.TotalCost)
	assert.Equal(t, "3.25", view.UnitCost)

	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), stored.StockQuantity)
	assert.Equal(t, "3.25", stored.CostPrice.StringFixed(2))
}

func TestReceivePurchaseUnknownSupplierRollsBack(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 10, "2.00")
	unknown, err := partner.NewSupplier("Ghost", "", "", "", "")
	require.NoError(t, err)

	_, err = env.service.ReceivePurchase(context.Background(), ReceivePurchaseInput{
		SupplierID: unknown.ID,
		ProductID:  product.ID,
		Quantity:   50,
		UnitCost:   "3.25",
	})
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))

	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.StockQuantity)
	assert.Equal(t, "2.00", stored.CostPrice.StringFixed(2))

	var n int64
	require.NoError(t, env.db.Model(&inventory.PurchaseOrder{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestReceivePurchaseRejectsBadUnitCost(t *testing.T) {
	env := newStockEnv(t)
	supplier := env.createSupplier(t)
	product := env.createProduct(t, 10, "2.00")

	_, err := env.service.ReceivePurchase(context.Background(), ReceivePurchaseInput{
		SupplierID: supplier.ID,
		ProductID:  product.ID,
		Quantity:   50,
		UnitCost:   "cheap",
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInvalidInput))
}

func TestAdjustStockWritesOff(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 10, "2.00")

	view, err := env.service.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: product.ID,
		Quantity:  4,
		Reason:    string(inventory.ReasonSpoilage),
		Notes:     "freezer failure",
	})
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReasonSpoilage), view.Reason)

	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stored.StockQuantity)

	// 6 > threshold 5: no alert yet.
	assert.Zero(t, env.notifier.alerts)
}

func TestAdjustStockFiresLowStockAlert(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 10, "2.00")

	_, err := env.service.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: product.ID,
		Quantity:  6,
		Reason:    string(inventory.ReasonDamage),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.notifier.alerts)
}

func TestAdjustStockBeyondAvailableFails(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 3, "2.00")

	_, err := env.service.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: product.ID,
		Quantity:  5,
		Reason:    string(inventory.ReasonTheft),
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInsufficientStock))

	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.StockQuantity)

	var n int64
	require.NoError(t, env.db.Model(&inventory.StockAdjustment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAdjustStockUnknownReason(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 10, "2.00")

	_, err := env.service.AdjustStock(context.Background(), AdjustStockInput{
		ProductID: product.ID,
		Quantity:  2,
		Reason:    "SHRINKAGE",
	})
	require.Error(t, err)
	assert.True(t, shared.IsDomainError(err, shared.ErrCodeInvalidInput))
}

func TestAddStock(t *testing.T) {
	env := newStockEnv(t)
	product := env.createProduct(t, 10, "2.00")

	require.NoError(t, env.service.AddStock(context.Background(), AddStockInput{
		ProductID: product.ID,
		Quantity:  5,
	}))

	stored, err := env.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), stored.StockQuantity)
	// Manual additions leave the cost basis alone.
	assert.Equal(t, "2.00", stored.CostPrice.StringFixed(2))
}

func TestListPurchasesByProduct(t *testing.T) {
	env := newStockEnv(t)
	supplier := env.createSupplier(t)
	product := env.createProduct(t, 10, "2.00")

	for _, cost := range []string{"2.50", "2.75"} {
		_, err := env.service.ReceivePurchase(context.Background(), ReceivePurchaseInput{
			SupplierID: supplier.ID,
			ProductID:  product.ID,
			Quantity:   10,
			UnitCost:   cost,
		})
		require.NoError(t, err)
	}

	views, err := env.service.ListPurchasesByProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
