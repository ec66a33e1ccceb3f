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

func TestCreateSupplier(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.SupplierRepository)
	supplierService := service.NewSupplierService(mockRepo)
	ctx := context.Background()

	req := &models.CreateSupplierRequest{
		Name:        "Acme Corp",
		Phone:       "555-0100",
		Email:       "sales@acme.test",
		Specialties: []string{"Electronics", "Electronics", "Hardware"},
	}

	t.Run("Success - New Supplier Starts At Perfect Rating", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateSupplier", mock.Anything, mock.MatchedBy(func(s *models.Supplier) bool {
			return s.Name == req.Name && s.ReliabilityRating == 5.0 && s.Active
		})).Return(nil).Once()

		// Act
		supplier, err := supplierService.CreateSupplier(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, supplier)
		// Duplicate specialties in the request collapse to one.
		assert.Equal(t, []string{"Electronics", "Hardware"}, supplier.Specialties)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateSupplier", mock.Anything, mock.AnythingOfType("*models.Supplier")).Return(appErrors.DatabaseError("DB Connection Failed")).Once()

		// Act
		supplier, err := supplierService.CreateSupplier(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, supplier)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestSupplierMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Add Specialty", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.SupplierRepository)
		supplierService := service.NewSupplierService(mockRepo)
		supplier := models.NewSupplier("Acme Corp", "", "", "")
		supplier.ID = 2

		mockRepo.On("GetSupplierByID", mock.Anything, int64(2)).Return(supplier, nil).Once()
		mockRepo.On("UpdateSupplier", mock.Anything, mock.MatchedBy(func(s *models.Supplier) bool {
			return s.HasSpecialty("Electronics")
		})).Return(nil).Once()

		// Act
		updated, err := supplierService.AddSpecialty(ctx, 2, "Electronics")

		// Assert
		assert.NoError(t, err)
		assert.True(t, updated.HasSpecialty("Electronics"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Deactivate Supplier", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.SupplierRepository)
		supplierService := service.NewSupplierService(mockRepo)
		supplier := models.NewSupplier("Acme Corp", "", "", "")
		supplier.ID = 2

		mockRepo.On("GetSupplierByID", mock.Anything, int64(2)).Return(supplier, nil).Once()
		mockRepo.On("UpdateSupplier", mock.Anything, mock.MatchedBy(func(s *models.Supplier) bool {
			return !s.Active
		})).Return(nil).Once()

		// Act
		updated, err := supplierService.SetActive(ctx, 2, false)

		// Assert
		assert.NoError(t, err)
		assert.False(t, updated.Active)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Supplier Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.SupplierRepository)
		supplierService := service.NewSupplierService(mockRepo)

		mockRepo.On("GetSupplierByID", mock.Anything, int64(42)).Return(nil, appErrors.NotFoundError("no row")).Once()

		// Act
		updated, err := supplierService.RemoveSpecialty(ctx, 42, "Electronics")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, updated)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateSupplier")
	})
}
