package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appErrors "github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
	"github.com/restockhq/inventory-platform/internal/repositories/mocks"
	service "github.com/restockhq/inventory-platform/internal/services"
)

// AlertServiceMock is a mock type for the AlertService interface.
type AlertServiceMock struct {
	mock.Mock
}

func (m *AlertServiceMock) RaiseStockAlert(ctx context.Context, product *models.Product) (*models.Alert, error) {
	ret := m.Called(ctx, product)

	var r0 *models.Alert
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Alert)
	}

	return r0, ret.Error(1)
}

func (m *AlertServiceMock) ListAlerts(ctx context.Context, page, size int) ([]*models.Alert, error) {
	ret := m.Called(ctx, page, size)

	var r0 []*models.Alert
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Alert)
	}

	return r0, ret.Error(1)
}

func TestCreateProduct(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductRepository)
	productService := service.NewProductService(mockRepo, nil)
	ctx := context.Background()

	req := &models.CreateProductRequest{
		Name:         "Widget",
		Category:     "Hardware",
		Quantity:     10,
		MinThreshold: 5,
		Price:        2.5,
	}

	t.Run("Success - Create Product", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == req.Name && p.Category == req.Category && p.Quantity == req.Quantity
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, req.Name, product.Name)
		assert.Equal(t, req.MinThreshold, product.MinThreshold)
		assert.Equal(t, req.Price, product.Price)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(appErrors.DatabaseError("DB Connection Failed")).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.Contains(t, err.Error(), "Failed to create product")
		mockRepo.AssertExpectations(t)
	})
}

func TestSellProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sale Leaves Healthy Stock", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockAlerts := new(AlertServiceMock)
		productService := service.NewProductService(mockRepo, mockAlerts)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 20, MinThreshold: 5, Price: 2.5}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Quantity == 15 && p.SoldCount == 5
		})).Return(nil).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 1, 5)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 15, sold.Quantity)
		mockRepo.AssertExpectations(t)
		mockAlerts.AssertNotCalled(t, "RaiseStockAlert")
	})

	t.Run("Success - Sale Into Low Stock Raises Alert", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockAlerts := new(AlertServiceMock)
		productService := service.NewProductService(mockRepo, mockAlerts)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 6, MinThreshold: 5, Price: 2.5}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.Anything).Return(nil).Once()
		mockAlerts.On("RaiseStockAlert", mock.Anything, product).Return(&models.Alert{}, nil).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 1, 2)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 4, sold.Quantity)
		assert.Equal(t, models.StockStatusLow, sold.StockStatus())
		mockRepo.AssertExpectations(t)
		mockAlerts.AssertExpectations(t)
	})

	t.Run("Success - Alert Failure Never Fails The Sale", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockAlerts := new(AlertServiceMock)
		productService := service.NewProductService(mockRepo, mockAlerts)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 2, MinThreshold: 5, Price: 2.5}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.Anything).Return(nil).Once()
		mockAlerts.On("RaiseStockAlert", mock.Anything, product).Return(nil, appErrors.ThirdPartyError("SendGrid down")).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 1, 2)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0, sold.Quantity)
		mockAlerts.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, nil)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 3, MinThreshold: 5}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 1, 5)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, sold)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateProduct")
	})

	t.Run("Failure - Invalid Quantity", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, nil)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 3}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 1, 0)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, sold)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInvalidQuantity, appErr.Code)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, nil)

		mockRepo.On("GetProductByID", mock.Anything, int64(42)).Return(nil, appErrors.NotFoundError("no row")).Once()

		// Act
		sold, err := productService.SellProduct(ctx, 42, 1)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, sold)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestRestockProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Restock", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, nil)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 2}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Quantity == 12
		})).Return(nil).Once()

		// Act
		restocked, err := productService.RestockProduct(ctx, 1, 10)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 12, restocked.Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Quantity", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, nil)

		product := &models.Product{ID: 1, Name: "Widget", Quantity: 2}
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()

		// Act
		restocked, err := productService.RestockProduct(ctx, 1, -1)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, restocked)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInvalidQuantity, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateProduct")
	})
}

func TestListProducts(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductRepository)
	productService := service.NewProductService(mockRepo, nil)
	ctx := context.Background()

	t.Run("Success - List Products", func(t *testing.T) {
		// Arrange
		expected := []*models.Product{
			{ID: 1, Name: "Widget"},
			{ID: 2, Name: "Gadget"},
		}
		mockRepo.On("ListProducts", mock.Anything, 1, 10).Return(expected, 2, nil).Once()

		// Act
		products, total, err := productService.ListProducts(ctx, 1, 10)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		assert.Equal(t, 2, total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Out-Of-Range Paging Is Clamped", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListProducts", mock.Anything, 1, 20).Return([]*models.Product{}, 0, nil).Once()

		// Act
		_, _, err := productService.ListProducts(ctx, 0, 5000)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
