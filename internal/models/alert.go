package models

import (
	"fmt"
	"time"
)

type AlertSeverity string

type AlertStatus string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityInfo     AlertSeverity = "INFO"

	AlertStatusPending AlertStatus = "pending"
	AlertStatusSent    AlertStatus = "sent"
	AlertStatusFailed  AlertStatus = "failed"
)

// Alert is a stock-level notification for a product. Severity and
// message are derived from the product's stock state at creation time;
// Status tracks email delivery.
type Alert struct {
	ID           int64         `json:"id"`
	ProductID    int64         `json:"product_id"`
	ProductName  string        `json:"product_name"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	Status       AlertStatus   `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

func NewAlert(product *Product) *Alert {
	alert := &Alert{
		ProductID:   product.ID,
		ProductName: product.Name,
		Status:      AlertStatusPending,
	}

	switch product.StockStatus() {
	case StockStatusOut:
		alert.Severity = AlertSeverityCritical
		alert.Message = fmt.Sprintf("CRITICAL: %s is OUT OF STOCK!", product.Name)
	case StockStatusLow:
		alert.Severity = AlertSeverityWarning
		alert.Message = fmt.Sprintf("WARNING: %s is below minimum threshold! Current: %d, Min: %d",
			product.Name, product.Quantity, product.MinThreshold)
	default:
		alert.Severity = AlertSeverityInfo
		alert.Message = fmt.Sprintf("INFO: %s stock level is normal", product.Name)
	}

	return alert
}
