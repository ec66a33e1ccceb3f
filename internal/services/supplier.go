package service

import (
	"context"

	"github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
)

type SupplierService interface {
	CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error)
	GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*models.Supplier, error)
	AddSpecialty(ctx context.Context, id int64, specialty string) (*models.Supplier, error)
	RemoveSpecialty(ctx context.Context, id int64, specialty string) (*models.Supplier, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.Supplier, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

// CreateSupplier persists a new supplier; the id comes back from
// storage, unlike order ids.
func (s *supplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := models.NewSupplier(req.Name, req.Phone, req.Email, req.Address)

	for _, specialty := range req.Specialties {
		supplier.AddSpecialty(specialty)
	}

	err := s.repo.CreateSupplier(ctx, supplier)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create supplier").WithError(err)
	}

	return supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Supplier not found").WithError(err)
	}

	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch suppliers").WithError(err)
	}

	return suppliers, nil
}

func (s *supplierService) AddSpecialty(ctx context.Context, id int64, specialty string) (*models.Supplier, error) {
	return s.mutate(ctx, id, func(supplier *models.Supplier) {
		supplier.AddSpecialty(specialty)
	})
}

func (s *supplierService) RemoveSpecialty(ctx context.Context, id int64, specialty string) (*models.Supplier, error) {
	return s.mutate(ctx, id, func(supplier *models.Supplier) {
		supplier.RemoveSpecialty(specialty)
	})
}

func (s *supplierService) SetActive(ctx context.Context, id int64, active bool) (*models.Supplier, error) {
	return s.mutate(ctx, id, func(supplier *models.Supplier) {
		supplier.Active = active
	})
}

func (s *supplierService) mutate(ctx context.Context, id int64, fn func(*models.Supplier)) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Supplier not found").WithError(err)
	}

	fn(supplier)

	if err := s.repo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, errors.DatabaseError("Failed to update supplier").WithError(err)
	}

	return supplier, nil
}
