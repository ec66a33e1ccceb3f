package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
)

func TestSell(t *testing.T) {
	t.Run("Success - Sell Reduces Stock And Counts Units", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 10, SoldCount: 3, Price: 2.5}

		// Act
		err := product.Sell(4)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 6, product.Quantity)
		assert.Equal(t, 7, product.SoldCount)
	})

	t.Run("Success - Sell Entire Stock", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 5}

		// Act
		err := product.Sell(5)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0, product.Quantity)
		assert.Equal(t, models.StockStatusOut, product.StockStatus())
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 10}

		// Act
		err := product.Sell(0)

		// Assert
		assert.Error(t, err)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInvalidQuantity, appErr.Code)
		assert.Equal(t, 10, product.Quantity)
	})

	t.Run("Failure - Negative Quantity", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 10}

		// Act
		err := product.Sell(-3)

		// Assert
		assert.Error(t, err)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInvalidQuantity, appErr.Code)
	})

	t.Run("Failure - Insufficient Stock Leaves Product Untouched", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 0, SoldCount: 5}

		// Act
		err := product.Sell(1)

		// Assert
		assert.Error(t, err)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Equal(t, 0, product.Quantity)
		assert.Equal(t, 5, product.SoldCount)
	})
}

func TestRestock(t *testing.T) {
	t.Run("Success - Restock Adds Units", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 2, SoldCount: 8}

		// Act
		err := product.Restock(10)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 12, product.Quantity)
		assert.Equal(t, 8, product.SoldCount)
	})

	t.Run("Failure - Non-Positive Quantity", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 2}

		for _, qty := range []int{0, -5} {
			// Act
			err := product.Restock(qty)

			// Assert
			assert.Error(t, err)

			var appErr *appErrors.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, appErrors.ErrCodeInvalidQuantity, appErr.Code)
			assert.Equal(t, 2, product.Quantity)
		}
	})
}

func TestStockStatus(t *testing.T) {
	t.Run("Status Follows Quantity Against Threshold", func(t *testing.T) {
		product := &models.Product{Name: "Widget", Quantity: 10, MinThreshold: 5}
		assert.Equal(t, models.StockStatusIn, product.StockStatus())
		assert.False(t, product.IsLowStock())

		product.Quantity = 4
		assert.Equal(t, models.StockStatusLow, product.StockStatus())
		assert.True(t, product.IsLowStock())

		product.Quantity = 5
		assert.Equal(t, models.StockStatusIn, product.StockStatus())

		product.Quantity = 0
		assert.Equal(t, models.StockStatusOut, product.StockStatus())
	})

	t.Run("Low Stock Then Out Of Stock After Sales", func(t *testing.T) {
		// Arrange
		product := &models.Product{Name: "Widget", Quantity: 6, MinThreshold: 5}

		// Act
		assert.NoError(t, product.Sell(1))
		assert.Equal(t, models.StockStatusLow, product.StockStatus())

		assert.NoError(t, product.Sell(5))

		// Assert
		assert.Equal(t, models.StockStatusOut, product.StockStatus())
		assert.Error(t, product.Sell(1))
	})
}

func TestProductDerivedValues(t *testing.T) {
	// Arrange
	product := &models.Product{Name: "Widget", Quantity: 4, SoldCount: 10, Price: 2.5}

	// Assert
	assert.InDelta(t, 25.0, product.TotalRevenue(), 1e-9)
	assert.InDelta(t, 10.0, product.InventoryValue(), 1e-9)
}
