package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange bounds an aggregate query. Either end may be nil, meaning
// unbounded on that side. To is inclusive of the whole day it names.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// DailyQuantity is the total quantity of a product sold on one day
type DailyQuantity struct {
	Day      time.Time
	Quantity int64
}

// DailyRevenue is the paid revenue booked on one day
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// TopProduct summarises sales volume for a product
type TopProduct struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	Revenue     decimal.Decimal
}

// CustomerReceivable is the outstanding balance owed by one customer
type CustomerReceivable struct {
	CustomerID   uuid.UUID
	CustomerName string
	Phone        string
	OrderCount   int64
	Outstanding  decimal.Decimal
}

// RunSheetEntry is one stop on the delivery run sheet
type RunSheetEntry struct {
	OrderID       uuid.UUID
	CustomerName  string
	Phone         string
	Address       string
	TotalAmount   decimal.Decimal
	PaymentStatus string
	PlacedAt      time.Time
}

// StockPosition is a product's stock level against its threshold
type StockPosition struct {
	ProductID     uuid.UUID
	ProductName   string
	StockQuantity int64
	Threshold     int64
}

// FinancialSummary aggregates the money side of the business.
// GrossProfit uses each product's current cost price, not the cost at
// the time of sale.
type FinancialSummary struct {
	Revenue          decimal.Decimal
	CostOfGoodsSold  decimal.Decimal
	GrossProfit      decimal.Decimal
	TotalReceivables decimal.Decimal
	StockValue       decimal.Decimal
}

// RecentOrder is a headline row for the dashboard order feed
type RecentOrder struct {
	OrderID        uuid.UUID
	CustomerName   string
	TotalAmount    decimal.Decimal
	PaymentStatus  string
	DeliveryStatus string
	PlacedAt       time.Time
}

// DashboardSummary is the landing page aggregate
type DashboardSummary struct {
	ProductCount     int64
	CustomerCount    int64
	OrderCount       int64
	PendingDelivery  int64
	LowStockProducts []StockPosition
	StockLevels      []StockPosition
	RecentOrders     []RecentOrder
	Financial        FinancialSummary
	RevenueByDay     []DailyRevenue
	TopProducts      []TopProduct
}

// Repository answers read-only reporting queries across contexts
type Repository interface {
	Revenue(ctx context.Context, rng DateRange) (decimal.Decimal, error)
	CostOfGoodsSold(ctx context.Context, rng DateRange) (decimal.Decimal, error)
	TotalReceivables(ctx context.Context) (decimal.Decimal, error)
	StockValue(ctx context.Context) (decimal.Decimal, error)
	Counts(ctx context.Context) (products, customers, orders, pendingDelivery int64, err error)
	RevenueByDay(ctx context.Context, since time.Time) ([]DailyRevenue, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
	ReceivablesByCustomer(ctx context.Context) ([]CustomerReceivable, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
	LowestStock(ctx context.Context, limit int) ([]StockPosition, error)
	RunSheet(ctx context.Context) ([]RunSheetEntry, error)
	DailySalesQuantities(ctx context.Context, productID uuid.UUID, since time.Time) ([]DailyQuantity, error)
}
