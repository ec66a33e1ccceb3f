package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/restockhq/inventory-platform/internal/config"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB *sql.DB

	Product  ProductRepository
	Supplier SupplierRepository
	Order    OrderRepository
	Alert    AlertRepository
}

// New opens an instrumented Postgres handle and builds every repository
// on top of it.
func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := otelsql.RegisterDBStatsMetrics(db,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	); err != nil {
		return nil, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	return &Repository{
		DB:       db,
		Product:  NewProductRepo(db),
		Supplier: NewSupplierRepo(db),
		Order:    NewOrderRepo(db),
		Alert:    NewAlertRepo(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
