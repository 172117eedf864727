package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	appcatalog "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/catalog"
	appinventory "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/inventory"
	apppartner "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/partner"
	appreport "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/report"
	apptrade "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/trade"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/config"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/event"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/logger"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/notification"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/persistence"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/interfaces/http/handler"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/interfaces/http/router"
)

func main() {
	configPath := flag.String("config", "", "directory containing config.toml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	adjustmentRepo := persistence.NewGormStockAdjustmentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Events
	bus := event.NewInMemoryEventBus(log)
	notifier := notification.NewZapNotifier(log)
	bus.Subscribe(catalog.EventTypeLowStockAlert, appinventory.NewLowStockHandler(notifier))

	// Application services
	productService := appcatalog.NewProductService(productRepo, categoryRepo, log)
	categoryService := appcatalog.NewCategoryService(categoryRepo, log)
	customerService := apppartner.NewCustomerService(customerRepo, log)
	supplierService := apppartner.NewSupplierService(supplierRepo, log)
	orderService := apptrade.NewOrderService(orderRepo, productRepo, customerRepo, txManager, bus, log)
	stockService := appinventory.NewStockService(productRepo, purchaseRepo, adjustmentRepo, supplierRepo, txManager, bus, log)
	reportService := appreport.NewService(reportRepo, productRepo, appreport.Options{
		ForecastHistoryDays: cfg.Report.ForecastHistoryDays,
		ForecastWindowDays:  cfg.Report.ForecastWindowDays,
		TopProductLimit:     cfg.Report.TopProductLimit,
	}, log)

	engine := router.New(log, cfg.App.IsProduction(),
		handler.NewHealthHandler(db),
		handler.NewProductHandler(productService, log),
		handler.NewCategoryHandler(categoryService, log),
		handler.NewCustomerHandler(customerService, log),
		handler.NewSupplierHandler(supplierService, log),
		handler.NewOrderHandler(orderService, log),
		handler.NewStockHandler(stockService, log),
		handler.NewReportHandler(reportService, cfg.App.CurrencySymbol, log),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
