package service

import (
	"context"
	"fmt"

	"github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/metrics"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
	"github.com/restockhq/inventory-platform/pkg/sendgrid"
)

type AlertService interface {
	RaiseStockAlert(ctx context.Context, product *models.Product) (*models.Alert, error)
	ListAlerts(ctx context.Context, page, size int) ([]*models.Alert, error)
}

type alertService struct {
	repo      repository.AlertRepository
	email     sendgrid.EmailService
	recipient string
}

func NewAlertService(repo repository.AlertRepository, email sendgrid.EmailService, recipient string) AlertService {
	return &alertService{repo: repo, email: email, recipient: recipient}
}

// RaiseStockAlert records a low/out-of-stock alert and emails it to the
// configured recipient. Products with a normal stock level produce no
// alert. The alert row is written first; a failed send is recorded on
// the row rather than lost.
func (s *alertService) RaiseStockAlert(ctx context.Context, product *models.Product) (*models.Alert, error) {
	alert := models.NewAlert(product)

	if alert.Severity == models.AlertSeverityInfo {
		return alert, nil
	}

	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.DatabaseError("Failed to record stock alert").WithError(err)
	}

	metrics.RecordStockAlert(string(alert.Severity))

	if s.email == nil || s.recipient == "" {
		return alert, nil
	}

	subject := fmt.Sprintf("[%s] Stock alert: %s", alert.Severity, product.Name)

	if err := s.email.Send(ctx, s.recipient, subject, alert.Message); err != nil {
		alert.Status = models.AlertStatusFailed
		alert.ErrorMessage = err.Error()

		_ = s.repo.UpdateAlertStatus(ctx, alert.ID, models.AlertStatusFailed, alert.ErrorMessage)

		return alert, errors.ThirdPartyError("Failed to send alert email").WithError(err)
	}

	alert.Status = models.AlertStatusSent

	if err := s.repo.UpdateAlertStatus(ctx, alert.ID, models.AlertStatusSent, ""); err != nil {
		return alert, errors.DatabaseError("Alert sent but status update failed").WithError(err)
	}

	return alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, page, size int) ([]*models.Alert, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	alerts, err := s.repo.ListAlerts(ctx, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch alerts").WithError(err)
	}

	return alerts, nil
}
