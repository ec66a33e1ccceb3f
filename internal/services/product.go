package service

import (
	"context"
	"log/slog"

	"github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
	SellProduct(ctx context.Context, id int64, quantity int) (*models.Product, error)
	RestockProduct(ctx context.Context, id int64, quantity int) (*models.Product, error)
}

type productService struct {
	repo   repository.ProductRepository
	alerts AlertService
}

func NewProductService(repo repository.ProductRepository, alerts AlertService) ProductService {
	return &productService{repo: repo, alerts: alerts}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
		Price:        req.Price,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.MinThreshold != nil {
		product.MinThreshold = *req.MinThreshold
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := s.repo.ListProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

// SellProduct applies the sale and persists the product. The row is
// loaded fresh per request, so a failed write surfaces as an error
// without leaving a lingering divergence between memory and storage.
// A sale that leaves the product low or out of stock raises a stock
// alert; alert delivery is best-effort and never fails the sale.
func (s *productService) SellProduct(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := product.Sell(quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product after sale").WithError(err)
	}

	if s.alerts != nil && product.StockStatus() != models.StockStatusIn {
		if _, err := s.alerts.RaiseStockAlert(ctx, product); err != nil {
			slog.Warn("Failed to raise stock alert",
				slog.String("product", product.Name),
				slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) RestockProduct(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := product.Restock(quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product after restock").WithError(err)
	}

	return product, nil
}
