package repository

import (
	"context"
	"database/sql"

	"github.com/restockhq/inventory-platform/internal/models"
	"github.com/restockhq/inventory-platform/internal/utils"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	UpdateAlertStatus(ctx context.Context, id int64, status models.AlertStatus, errorMessage string) error
	ListAlerts(ctx context.Context, page, size int) ([]*models.Alert, error)
}

type alertRepository struct {
	DB *sql.DB
}

func NewAlertRepo(db *sql.DB) AlertRepository {
	return &alertRepository{DB: db}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO stock_alerts (product_id, product_name, severity, message, status, error_message)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, alert.ProductID, alert.ProductName, string(alert.Severity), alert.Message, string(alert.Status), alert.ErrorMessage).Scan(&alert.ID, &alert.CreatedAt)
}

func (r *alertRepository) UpdateAlertStatus(ctx context.Context, id int64, status models.AlertStatus, errorMessage string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE stock_alerts SET status = $1, error_message = $2 WHERE id = $3`

	_, err := r.DB.ExecContext(dbCtx, query, string(status), errorMessage, id)

	return err
}

func (r *alertRepository) ListAlerts(ctx context.Context, page, size int) ([]*models.Alert, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	offset := (page - 1) * size

	query := `SELECT id, product_id, product_name, severity, message, status, error_message, created_at
			  FROM stock_alerts
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var alerts []*models.Alert

	for rows.Next() {
		alert := &models.Alert{}

		var severity, status string

		err := rows.Scan(&alert.ID, &alert.ProductID, &alert.ProductName, &severity, &alert.Message, &status, &alert.ErrorMessage, &alert.CreatedAt)
		if err != nil {
			return nil, err
		}

		alert.Severity = models.AlertSeverity(severity)
		alert.Status = models.AlertStatus(status)
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
