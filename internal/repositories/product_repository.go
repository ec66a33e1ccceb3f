package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/restockhq/inventory-platform/internal/models"
	"github.com/restockhq/inventory-platform/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
	ListAllProducts(ctx context.Context) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, category, quantity, min_threshold, price, sold_count, created_at, updated_at`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, category, quantity, min_threshold, price, sold_count)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Category, product.Quantity, product.MinThreshold, product.Price, product.SoldCount).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return r.getProduct(ctx, query, id)
}

// GetProductByName looks a product up by its name. Name uniqueness is a
// schema concern, not assumed here; the first match wins.
func (r *productRepository) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 LIMIT 1`

	return r.getProduct(ctx, query, name)
}

func (r *productRepository) getProduct(ctx context.Context, query string, arg any) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, arg).Scan(&product.ID, &product.Name, &product.Category, &product.Quantity, &product.MinThreshold, &product.Price, &product.SoldCount, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET category = $1, quantity = $2, min_threshold = $3, price = $4, sold_count = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Category, product.Quantity, product.MinThreshold, product.Price, product.SoldCount, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products`

	err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListAllProducts loads the whole working set, as the dashboard does.
func (r *productRepository) ListAllProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Quantity, &product.MinThreshold, &product.Price, &product.SoldCount, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
