package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/restockhq/inventory-platform/internal/models"
	"github.com/restockhq/inventory-platform/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]*models.Order, error)
	MaxOrderID(ctx context.Context) (int64, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder writes the order with its in-process id. The id column is
// not serial; the sequence owns it.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO orders (order_id, product_id, supplier_id, quantity_ordered, order_date, expected_delivery_date, status, total_cost, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, order.OrderID, order.ProductID, order.SupplierID, order.QuantityOrdered, order.OrderDate, order.ExpectedDeliveryDate, string(order.Status), order.TotalCost, order.Notes).Scan(&order.CreatedAt, &order.UpdatedAt)
}

const orderSelect = `
		SELECT o.order_id, o.product_id, o.supplier_id, o.quantity_ordered, o.order_date, o.expected_delivery_date, o.status, o.total_cost, o.notes, o.created_at, o.updated_at,
		       p.id, p.name, p.category, p.quantity, p.min_threshold, p.price, p.sold_count, p.created_at, p.updated_at,
		       s.id, s.name, s.phone, s.email, s.address, s.reliability_rating, s.is_active, s.total_orders, s.orders_on_time, s.created_at, s.updated_at
		FROM orders o
		JOIN products p ON o.product_id = p.id
		JOIN suppliers s ON o.supplier_id = s.id`

// GetOrderByID hydrates the referenced product and supplier alongside
// the order, the same working set the desktop app held in memory.
func (r *orderRepository) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(dbCtx, orderSelect+` WHERE o.order_id = $1`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1, expected_delivery_date = $2, notes = $3, updated_at = NOW()
		WHERE order_id = $4
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, string(order.Status), order.ExpectedDeliveryDate, order.Notes, order.OrderID).Scan(&order.UpdatedAt)
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, orderSelect+` ORDER BY o.order_date DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var orders []*models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// MaxOrderID seeds the order-id sequence at startup so restarts never
// reuse an id. Returns 0 on an empty table.
func (r *orderRepository) MaxOrderID(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var maxID sql.NullInt64

	err := r.DB.QueryRowContext(dbCtx, `SELECT MAX(order_id) FROM orders`).Scan(&maxID)
	if err != nil {
		return 0, err
	}

	return maxID.Int64, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	product := &models.Product{}
	supplier := &models.Supplier{}

	var status string

	err := row.Scan(
		&order.OrderID, &order.ProductID, &order.SupplierID, &order.QuantityOrdered, &order.OrderDate, &order.ExpectedDeliveryDate, &status, &order.TotalCost, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
		&product.ID, &product.Name, &product.Category, &product.Quantity, &product.MinThreshold, &product.Price, &product.SoldCount, &product.CreatedAt, &product.UpdatedAt,
		&supplier.ID, &supplier.Name, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.ReliabilityRating, &supplier.Active, &supplier.TotalOrdersPlaced, &supplier.OrdersDeliveredOnTime, &supplier.CreatedAt, &supplier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Status = models.OrderStatus(status)
	order.Product = product
	order.Supplier = supplier

	return order, nil
}
