package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/restockhq/inventory-platform/internal/api/handlers"
	"github.com/restockhq/inventory-platform/internal/api/middleware"
	"github.com/restockhq/inventory-platform/internal/cache"
	"github.com/restockhq/inventory-platform/internal/config"
	"github.com/restockhq/inventory-platform/internal/health"
	"github.com/restockhq/inventory-platform/internal/metrics"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
	service "github.com/restockhq/inventory-platform/internal/services"
	"github.com/restockhq/inventory-platform/internal/telemetry"
	"github.com/restockhq/inventory-platform/pkg/sendgrid"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Failed to access the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Failed to close database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Error("Failed to access the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := redisCache.Close(); err != nil {
			slog.Error("Failed to close redis connection", slog.String("error", err.Error()))
		}
	}()

	// Order ids continue above the highest persisted id.
	maxOrderID, err := repos.Order.MaxOrderID(ctx)
	if err != nil {
		slog.Error("Failed to read highest order id", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sequence := models.NewSequence(maxOrderID)

	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	alertService := service.NewAlertService(repos.Alert, emailService, cfg.SendGrid.AlertRecipient)
	productService := service.NewProductService(repos.Product, alertService)
	productHandler := handlers.NewProductHandler(productService)
	supplierService := service.NewSupplierService(repos.Supplier)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	orderService := service.NewOrderService(repos.Order, repos.Product, repos.Supplier, sequence)
	orderHandler := handlers.NewOrderHandler(orderService)
	analyticsService := service.NewAnalyticsService(repos.Product, repos.Supplier, repos.Order, redisCache, cfg.Cache.AnalyticsTTL)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, alertService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Failed to create health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.Int64("last_order_id", sequence.Current()),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/v1/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("POST /api/v1/products/{id}/sell", productHandler.SellProduct())
	routerMux.HandleFunc("POST /api/v1/products/{id}/restock", productHandler.RestockProduct())
	routerMux.HandleFunc("POST /api/v1/suppliers", supplierHandler.CreateSupplier())
	routerMux.HandleFunc("GET /api/v1/suppliers", supplierHandler.ListSuppliers())
	routerMux.HandleFunc("GET /api/v1/suppliers/{id}", supplierHandler.GetSupplier())
	routerMux.HandleFunc("POST /api/v1/suppliers/{id}/specialties", supplierHandler.AddSpecialty())
	routerMux.HandleFunc("DELETE /api/v1/suppliers/{id}/specialties", supplierHandler.RemoveSpecialty())
	routerMux.HandleFunc("PATCH /api/v1/suppliers/{id}/active", supplierHandler.SetActive())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/confirm", orderHandler.ConfirmOrder())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/ship", orderHandler.ShipOrder())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/deliver", orderHandler.DeliverOrder())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/cancel", orderHandler.CancelOrder())
	routerMux.HandleFunc("GET /api/v1/analytics/report", analyticsHandler.GetReport())
	routerMux.HandleFunc("GET /api/v1/alerts", analyticsHandler.ListAlerts())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Error("Telemetry shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
