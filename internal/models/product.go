package models

import (
	"fmt"
	"time"

	"github.com/restockhq/inventory-platform/internal/errors"
)

type StockStatus string

const (
	StockStatusOut StockStatus = "OUT OF STOCK"
	StockStatusLow StockStatus = "LOW STOCK"
	StockStatusIn  StockStatus = "IN STOCK"
)

type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	MinThreshold int       `json:"min_threshold"`
	Price        float64   `json:"price"`
	SoldCount    int       `json:"sold_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sell removes qty units from stock and adds them to the sold counter.
// On error the product is left untouched.
func (p *Product) Sell(qty int) error {
	if qty <= 0 {
		return errors.InvalidQuantityError(fmt.Sprintf("Sale quantity must be positive, got %d", qty))
	}

	if qty > p.Quantity {
		return errors.InsufficientStockError(fmt.Sprintf("Cannot sell %d units of %q, only %d in stock", qty, p.Name, p.Quantity))
	}

	p.Quantity -= qty
	p.SoldCount += qty

	return nil
}

// Restock adds qty units to stock.
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return errors.InvalidQuantityError(fmt.Sprintf("Restock quantity must be positive, got %d", qty))
	}

	p.Quantity += qty

	return nil
}

// IsLowStock reports whether stock has fallen below the configured
// minimum threshold. A zero-quantity product is also low-stock whenever
// its threshold is positive.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinThreshold
}

func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.IsLowStock():
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// TotalRevenue is lifetime revenue at the current price.
func (p *Product) TotalRevenue() float64 {
	return float64(p.SoldCount) * p.Price
}

// InventoryValue is the retail value of the units currently on hand.
func (p *Product) InventoryValue() float64 {
	return float64(p.Quantity) * p.Price
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Category     string  `json:"category" validate:"required,min=1,max=100"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	MinThreshold int     `json:"min_threshold" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
}

type StockChangeRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

type ProductListResponse struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type UpdateProductRequest struct {
	Category     *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	MinThreshold *int     `json:"min_threshold,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}
