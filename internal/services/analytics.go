package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/restockhq/inventory-platform/internal/cache"
	"github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
)

const (
	analyticsCacheKey  = "analytics:report"
	topProductsToTrack = 3
)

type AnalyticsService interface {
	Report(ctx context.Context) (*models.AnalyticsReport, error)
}

type analyticsService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.OrderRepository
	cache        cache.Cache
	cacheTTL     time.Duration
}

func NewAnalyticsService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, orderRepo repository.OrderRepository, c cache.Cache, cacheTTL time.Duration) AnalyticsService {
	return &analyticsService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

// Report computes the dashboard snapshot over the full working set.
// Results are cached briefly; cache failures fall through to a fresh
// computation.
func (s *analyticsService) Report(ctx context.Context) (*models.AnalyticsReport, error) {
	if s.cache != nil {
		report := &models.AnalyticsReport{}

		found, err := s.cache.Get(ctx, analyticsCacheKey, report)
		if err != nil {
			slog.Warn("Failed to read analytics cache", slog.String("error", err.Error()))
		} else if found {
			return report, nil
		}
	}

	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products for analytics").WithError(err)
	}

	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch suppliers for analytics").WithError(err)
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders for analytics").WithError(err)
	}

	report := buildReport(products, suppliers, orders, time.Now())

	if s.cache != nil {
		if err := s.cache.Set(ctx, analyticsCacheKey, report, s.cacheTTL); err != nil {
			slog.Warn("Failed to write analytics cache", slog.String("error", err.Error()))
		}
	}

	return report, nil
}

func buildReport(products []*models.Product, suppliers []*models.Supplier, orders []*models.Order, now time.Time) *models.AnalyticsReport {
	report := &models.AnalyticsReport{GeneratedAt: now}

	report.Inventory.TotalProducts = len(products)

	for _, product := range products {
		report.Inventory.TotalStockUnits += product.Quantity
		report.Inventory.TotalInventoryValue += product.InventoryValue()
		report.Sales.TotalUnitsSold += product.SoldCount
		report.Sales.TotalRevenue += product.TotalRevenue()

		if product.IsLowStock() {
			report.Inventory.LowStockCount++
		}
	}

	if len(products) > 0 {
		report.Sales.AvgRevenuePerProduct = report.Sales.TotalRevenue / float64(len(products))
	}

	report.Orders.TotalOrders = len(orders)

	for _, order := range orders {
		report.Orders.TotalOrderValue += order.TotalCost

		switch order.Status {
		case models.OrderStatusPending:
			report.Orders.PendingOrders++
		case models.OrderStatusDelivered:
			report.Orders.DeliveredOrders++
		}

		if order.IsOverdue(now) {
			report.Orders.OverdueOrders++
		}
	}

	report.Suppliers.TotalSuppliers = len(suppliers)

	var ratingSum float64

	for _, supplier := range suppliers {
		ratingSum += supplier.ReliabilityRating

		if supplier.Active {
			report.Suppliers.ActiveSuppliers++
		}
	}

	if len(suppliers) > 0 {
		report.Suppliers.AverageRating = ratingSum / float64(len(suppliers))
	}

	report.TopProducts = topByRevenue(products, topProductsToTrack)

	return report
}

func topByRevenue(products []*models.Product, n int) []models.ProductRevenue {
	ranked := make([]models.ProductRevenue, 0, len(products))

	for _, product := range products {
		ranked = append(ranked, models.ProductRevenue{
			Name:    product.Name,
			Revenue: product.TotalRevenue(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
