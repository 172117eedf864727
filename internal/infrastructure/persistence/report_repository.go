package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/report"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
)

// GormReportRepository implements report.Repository with read-only
// aggregate queries across the orders, products and customers tables.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a report repository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

var _ report.Repository = (*GormReportRepository)(nil)

// dateExpr formats a timestamp column as YYYY-MM-DD for grouping
func (r *GormReportRepository) dateExpr(col string) string {
	if r.db.Dialector.Name() == "postgres" {
		return "to_char(" + col + ", 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', " + col + ")"
}

func (r *GormReportRepository) sumQuery(ctx context.Context, query *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, shared.WrapDomainError(shared.ErrCodeInternal, "aggregate query", err)
	}
	return row.Total, nil
}

// applyRange constrains a query to the given date range. The upper
// bound covers the whole day it names.
func applyRange(query *gorm.DB, col string, rng report.DateRange) *gorm.DB {
	if rng.From != nil {
		query = query.Where(col+" >= ?", *rng.From)
	}
	if rng.To != nil {
		query = query.Where(col+" < ?", rng.To.AddDate(0, 0, 1))
	}
	return query
}

// Revenue sums the totals of paid orders placed within the range
func (r *GormReportRepository) Revenue(ctx context.Context, rng report.DateRange) (decimal.Decimal, error) {
	query := dbFromContext(ctx, r.db).
		Model(&trade.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("payment_status = ?", trade.PaymentPaid)
	query = applyRange(query, "created_at", rng)
	return r.sumQuery(ctx, query)
}

// CostOfGoodsSold prices the items of paid orders within the range at
// each product's current cost price.
func (r *GormReportRepository) CostOfGoodsSold(ctx context.Context, rng report.DateRange) (decimal.Decimal, error) {
	query := dbFromContext(ctx, r.db).
		Table("order_items oi").
		Select("COALESCE(SUM(oi.quantity * p.cost_price), 0) AS total").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.payment_status = ?", trade.PaymentPaid)
	query = applyRange(query, "o.created_at", rng)
	return r.sumQuery(ctx, query)
}

// TotalReceivables sums the totals of orders not yet paid
func (r *GormReportRepository) TotalReceivables(ctx context.Context) (decimal.Decimal, error) {
	query := dbFromContext(ctx, r.db).
		Model(&trade.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("payment_status <> ?", trade.PaymentPaid)
	return r.sumQuery(ctx, query)
}

// StockValue prices all stock on hand at current cost
func (r *GormReportRepository) StockValue(ctx context.Context) (decimal.Decimal, error) {
	query := dbFromContext(ctx, r.db).Raw(
		`SELECT COALESCE(SUM(stock_quantity * cost_price), 0) AS total FROM products`)
	return r.sumQuery(ctx, query)
}

// Counts returns the headline entity counts for the dashboard
func (r *GormReportRepository) Counts(ctx context.Context) (products, customers, orders, pendingDelivery int64, err error) {
	db := dbFromContext(ctx, r.db)

	type counter struct {
		table string
		where []interface{}
		dest  *int64
	}
	counters := []counter{
		{table: "products", dest: &products},
		{table: "customers", dest: &customers},
		{table: "orders", dest: &orders},
		{table: "orders", where: []interface{}{"delivery_status = ?", trade.DeliveryPending}, dest: &pendingDelivery},
	}
	for _, c := range counters {
		query := db.Table(c.table)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err = query.Count(c.dest).Error; err != nil {
			err = shared.WrapDomainError(shared.ErrCodeInternal, "count "+c.table, err)
			return
		}
	}
	return
}

// RevenueByDay groups paid revenue per calendar day since the cutoff
func (r *GormReportRepository) RevenueByDay(ctx context.Context, since time.Time) ([]report.DailyRevenue, error) {
	var rows []struct {
		Day     string
		Revenue decimal.Decimal
	}
	err := dbFromContext(ctx, r.db).
		Model(&trade.Order{}).
		Select(r.dateExpr("created_at")+" AS day, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("payment_status = ? AND created_at >= ?", trade.PaymentPaid, since).
		Group(r.dateExpr("created_at")).
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "revenue by day", err)
	}

	out := make([]report.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			return nil, shared.WrapDomainError(shared.ErrCodeInternal, "parse revenue day", err)
		}
		out = append(out, report.DailyRevenue{Day: day, Revenue: row.Revenue})
	}
	return out, nil
}

// TopProducts ranks products by quantity sold
func (r *GormReportRepository) TopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	var rows []struct {
		ProductID   uuid.UUID
		ProductName string
		Quantity    int64
		Revenue     decimal.Decimal
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT oi.product_id AS product_id,
		       oi.product_name AS product_name,
		       SUM(oi.quantity) AS quantity,
		       SUM(oi.quantity * oi.unit_price) AS revenue
		FROM order_items oi
		GROUP BY oi.product_id, oi.product_name
		ORDER BY quantity DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "top products", err)
	}

	out := make([]report.TopProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.TopProduct(row))
	}
	return out, nil
}

// ReceivablesByCustomer lists outstanding balances per customer
func (r *GormReportRepository) ReceivablesByCustomer(ctx context.Context) ([]report.CustomerReceivable, error) {
	var rows []struct {
		CustomerID   uuid.UUID
		CustomerName string
		Phone        string
		OrderCount   int64
		Outstanding  decimal.Decimal
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT c.id AS customer_id,
		       c.name AS customer_name,
		       c.phone AS phone,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_amount), 0) AS outstanding
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.payment_status <> ?
		GROUP BY c.id, c.name, c.phone
		ORDER BY outstanding DESC`, trade.PaymentPaid).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "receivables by customer", err)
	}

	out := make([]report.CustomerReceivable, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.CustomerReceivable(row))
	}
	return out, nil
}

// RecentOrders lists the newest orders with customer names
func (r *GormReportRepository) RecentOrders(ctx context.Context, limit int) ([]report.RecentOrder, error) {
	var rows []struct {
		OrderID        uuid.UUID
		CustomerName   string
		TotalAmount    decimal.Decimal
		PaymentStatus  string
		DeliveryStatus string
		PlacedAt       time.Time
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT o.id AS order_id,
		       c.name AS customer_name,
		       o.total_amount AS total_amount,
		       o.payment_status AS payment_status,
		       o.delivery_status AS delivery_status,
		       o.created_at AS placed_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "recent orders", err)
	}

	out := make([]report.RecentOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.RecentOrder(row))
	}
	return out, nil
}

// LowestStock lists the products with the least stock on hand
func (r *GormReportRepository) LowestStock(ctx context.Context, limit int) ([]report.StockPosition, error) {
	var rows []struct {
		ProductID     uuid.UUID
		ProductName   string
		StockQuantity int64
		Threshold     int64
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT id AS product_id,
		       name AS product_name,
		       stock_quantity AS stock_quantity,
		       low_stock_threshold AS threshold
		FROM products
		ORDER BY stock_quantity ASC, name ASC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "lowest stock", err)
	}

	out := make([]report.StockPosition, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.StockPosition(row))
	}
	return out, nil
}

// RunSheet lists orders awaiting delivery with customer contacts
func (r *GormReportRepository) RunSheet(ctx context.Context) ([]report.RunSheetEntry, error) {
	var rows []struct {
		OrderID       uuid.UUID
		CustomerName  string
		Phone         string
		Address       string
		TotalAmount   decimal.Decimal
		PaymentStatus string
		PlacedAt      time.Time
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT o.id AS order_id,
		       c.name AS customer_name,
		       c.phone AS phone,
		       c.address AS address,
		       o.total_amount AS total_amount,
		       o.payment_status AS payment_status,
		       o.created_at AS placed_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.delivery_status = ?
		ORDER BY o.created_at ASC`, trade.DeliveryPending).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "run sheet", err)
	}

	out := make([]report.RunSheetEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.RunSheetEntry(row))
	}
	return out, nil
}

// DailySalesQuantities totals one product's sold quantity per day
// since the cutoff. Days with no sales are absent from the result.
func (r *GormReportRepository) DailySalesQuantities(ctx context.Context, productID uuid.UUID, since time.Time) ([]report.DailyQuantity, error) {
	var rows []struct {
		Day      string
		Quantity int64
	}
	err := dbFromContext(ctx, r.db).Raw(`
		SELECT `+r.dateExpr("o.created_at")+` AS day,
		       SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.product_id = ? AND o.created_at >= ?
		GROUP BY `+r.dateExpr("o.created_at")+`
		ORDER BY day ASC`, productID, since).Scan(&rows).Error
	if err != nil {
		return nil, shared.WrapDomainError(shared.ErrCodeInternal, "daily sales quantities", err)
	}

	out := make([]report.DailyQuantity, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			return nil, shared.WrapDomainError(shared.ErrCodeInternal, "parse sales day", err)
		}
		out = append(out, report.DailyQuantity{Day: day, Quantity: row.Quantity})
	}
	return out, nil
}
