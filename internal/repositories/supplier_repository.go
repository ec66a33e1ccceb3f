package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/restockhq/inventory-platform/internal/models"
	"github.com/restockhq/inventory-platform/internal/utils"
)

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	GetSupplierByName(ctx context.Context, name string) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *models.Supplier) error
	ListSuppliers(ctx context.Context) ([]*models.Supplier, error)
}

type supplierRepository struct {
	DB *sql.DB
}

func NewSupplierRepo(db *sql.DB) SupplierRepository {
	return &supplierRepository{DB: db}
}

const supplierColumns = `id, name, phone, email, address, reliability_rating, is_active, total_orders, orders_on_time, created_at, updated_at`

// CreateSupplier inserts the supplier and lets the database assign the
// id (orders generate theirs in-process; suppliers do not).
func (r *supplierRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO suppliers (name, phone, email, address, reliability_rating, is_active, total_orders, orders_on_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.ReliabilityRating, supplier.Active, supplier.TotalOrdersPlaced, supplier.OrdersDeliveredOnTime).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return err
	}

	return r.insertSpecialties(dbCtx, supplier.ID, supplier.Specialties)
}

func (r *supplierRepository) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`

	return r.getSupplier(ctx, query, id)
}

func (r *supplierRepository) GetSupplierByName(ctx context.Context, name string) (*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE name = $1 LIMIT 1`

	return r.getSupplier(ctx, query, name)
}

func (r *supplierRepository) getSupplier(ctx context.Context, query string, arg any) (*models.Supplier, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	supplier := &models.Supplier{}

	err := r.DB.QueryRowContext(dbCtx, query, arg).Scan(&supplier.ID, &supplier.Name, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.ReliabilityRating, &supplier.Active, &supplier.TotalOrdersPlaced, &supplier.OrdersDeliveredOnTime, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	specialties, err := r.loadSpecialties(dbCtx, supplier.ID)
	if err != nil {
		return nil, err
	}

	supplier.Specialties = specialties

	return supplier, nil
}

// UpdateSupplier rewrites the row and replaces the specialty set. The
// two statements are not transactional, matching the rest of the
// persistence layer.
func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier *models.Supplier) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE suppliers SET name = $1, phone = $2, email = $3, address = $4, reliability_rating = $5, is_active = $6, total_orders = $7, orders_on_time = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.ReliabilityRating, supplier.Active, supplier.TotalOrdersPlaced, supplier.OrdersDeliveredOnTime, supplier.ID).Scan(&supplier.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM supplier_specialties WHERE supplier_id = $1`, supplier.ID); err != nil {
		return err
	}

	return r.insertSpecialties(dbCtx, supplier.ID, supplier.Specialties)
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var suppliers []*models.Supplier

	byID := make(map[int64]*models.Supplier)

	for rows.Next() {
		supplier := &models.Supplier{}

		err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.ReliabilityRating, &supplier.Active, &supplier.TotalOrdersPlaced, &supplier.OrdersDeliveredOnTime, &supplier.CreatedAt, &supplier.UpdatedAt)
		if err != nil {
			return nil, err
		}

		suppliers = append(suppliers, supplier)
		byID[supplier.ID] = supplier
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	specialtyRows, err := r.DB.QueryContext(dbCtx, `SELECT supplier_id, specialty FROM supplier_specialties ORDER BY supplier_id`)
	if err != nil {
		return nil, err
	}

	defer specialtyRows.Close()

	for specialtyRows.Next() {
		var supplierID int64

		var specialty string

		if err := specialtyRows.Scan(&supplierID, &specialty); err != nil {
			return nil, err
		}

		if supplier, ok := byID[supplierID]; ok {
			supplier.Specialties = append(supplier.Specialties, specialty)
		}
	}

	if err := specialtyRows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *supplierRepository) insertSpecialties(ctx context.Context, supplierID int64, specialties []string) error {
	for _, specialty := range specialties {
		if _, err := r.DB.ExecContext(ctx, `INSERT INTO supplier_specialties (supplier_id, specialty) VALUES ($1, $2)`, supplierID, specialty); err != nil {
			return fmt.Errorf("inserting specialty %q: %w", specialty, err)
		}
	}

	return nil
}

func (r *supplierRepository) loadSpecialties(ctx context.Context, supplierID int64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT specialty FROM supplier_specialties WHERE supplier_id = $1 ORDER BY specialty`, supplierID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var specialties []string

	for rows.Next() {
		var specialty string

		if err := rows.Scan(&specialty); err != nil {
			return nil, err
		}

		specialties = append(specialties, specialty)
	}

	return specialties, rows.Err()
}
