package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/report"
)

// Options tunes the reporting queries
type Options struct {
	ForecastHistoryDays int
	ForecastWindowDays  int
	TopProductLimit     int
	RevenueChartDays    int
	RecentOrderLimit    int
	StockChartLimit     int
}

// DefaultOptions returns the standard reporting windows
func DefaultOptions() Options {
	return Options{
		ForecastHistoryDays: 90,
		ForecastWindowDays:  7,
		TopProductLimit:     5,
		RevenueChartDays:    30,
		RecentOrderLimit:    5,
		StockChartLimit:     20,
	}
}

// Service implements the reporting and forecasting use cases. All of
// it is derived data; nothing here writes.
type Service struct {
	reports  report.Repository
	products catalog.ProductRepository
	opts     Options
	now      func() time.Time
	log      *zap.Logger
}

// NewService creates a report service
func NewService(reports report.Repository, products catalog.ProductRepository, opts Options, log *zap.Logger) *Service {
	if opts.ForecastHistoryDays <= 0 {
		opts.ForecastHistoryDays = 90
	}
	if opts.ForecastWindowDays <= 0 {
		opts.ForecastWindowDays = 7
	}
	if opts.TopProductLimit <= 0 {
		opts.TopProductLimit = 5
	}
	if opts.RevenueChartDays <= 0 {
		opts.RevenueChartDays = 30
	}
	if opts.RecentOrderLimit <= 0 {
		opts.RecentOrderLimit = 5
	}
	if opts.StockChartLimit <= 0 {
		opts.StockChartLimit = 20
	}
	return &Service{
		reports:  reports,
		products: products,
		opts:     opts,
		now:      time.Now,
		log:      log,
	}
}

// Financial assembles the money-side summary. Revenue and gross
// profit honor the optional date range; receivables and stock value
// are always current. Gross profit prices sold quantities at each
// product's current cost.
func (s *Service) Financial(ctx context.Context, rng report.DateRange) (*report.FinancialSummary, error) {
	revenue, err := s.reports.Revenue(ctx, rng)
	if err != nil {
		return nil, err
	}
	cogs, err := s.reports.CostOfGoodsSold(ctx, rng)
	if err != nil {
		return nil, err
	}
	receivables, err := s.reports.TotalReceivables(ctx)
	if err != nil {
		return nil, err
	}
	stockValue, err := s.reports.StockValue(ctx)
	if err != nil {
		return nil, err
	}

	return &report.FinancialSummary{
		Revenue:          revenue,
		CostOfGoodsSold:  cogs,
		GrossProfit:      revenue.Sub(cogs),
		TotalReceivables: receivables,
		StockValue:       stockValue,
	}, nil
}

// Dashboard assembles the landing page summary
func (s *Service) Dashboard(ctx context.Context) (*report.DashboardSummary, error) {
	products, customers, orders, pendingDelivery, err := s.reports.Counts(ctx)
	if err != nil {
		return nil, err
	}

	financial, err := s.Financial(ctx, report.DateRange{})
	if err != nil {
		return nil, err
	}

	lowStock, err := s.products.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	positions := make([]report.StockPosition, 0, len(lowStock))
	for i := range lowStock {
		p := &lowStock[i]
		positions = append(positions, report.StockPosition{
			ProductID:     p.ID,
			ProductName:   p.Name,
			StockQuantity: p.StockQuantity,
			Threshold:     p.LowStockThreshold,
		})
	}

	since := s.now().AddDate(0, 0, -(s.opts.RevenueChartDays - 1))
	revenueByDay, err := s.reports.RevenueByDay(ctx, since)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.reports.TopProducts(ctx, s.opts.TopProductLimit)
	if err != nil {
		return nil, err
	}

	recentOrders, err := s.reports.RecentOrders(ctx, s.opts.RecentOrderLimit)
	if err != nil {
		return nil, err
	}

	stockLevels, err := s.reports.LowestStock(ctx, s.opts.StockChartLimit)
	if err != nil {
		return nil, err
	}

	return &report.DashboardSummary{
		ProductCount:     products,
		CustomerCount:    customers,
		OrderCount:       orders,
		PendingDelivery:  pendingDelivery,
		LowStockProducts: positions,
		StockLevels:      stockLevels,
		RecentOrders:     recentOrders,
		Financial:        *financial,
		RevenueByDay:     revenueByDay,
		TopProducts:      topProducts,
	}, nil
}

// Receivables lists customers with outstanding balances
func (s *Service) Receivables(ctx context.Context) ([]report.CustomerReceivable, error) {
	return s.reports.ReceivablesByCustomer(ctx)
}

// RunSheet lists pending deliveries for the drivers
func (s *Service) RunSheet(ctx context.Context) ([]report.RunSheetEntry, error) {
	return s.reports.RunSheet(ctx)
}

// Forecast predicts demand for one product over the next window
func (s *Service) Forecast(ctx context.Context, productID uuid.UUID) (*ForecastResult, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	since := today.AddDate(0, 0, -(s.opts.ForecastHistoryDays - 1))
	history, err := s.reports.DailySalesQuantities(ctx, productID, since)
	if err != nil {
		return nil, err
	}

	result := BuildForecast(history, product.StockQuantity, today, s.opts.ForecastHistoryDays, s.opts.ForecastWindowDays)
	s.log.Debug("forecast built",
		zap.String("product_id", productID.String()),
		zap.Float64("daily_average", result.DailyAverage),
		zap.Int64("reorder_quantity", result.ReorderQuantity))
	return &result, nil
}
