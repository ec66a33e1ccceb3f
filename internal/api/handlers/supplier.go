package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/restockhq/inventory-platform/internal/api/middleware"
	"github.com/restockhq/inventory-platform/internal/models"
	service "github.com/restockhq/inventory-platform/internal/services"
	"github.com/restockhq/inventory-platform/internal/utils"
	"github.com/restockhq/inventory-platform/internal/utils/response"
)

type SupplierHandler struct {
	supplierService service.SupplierService
	validator       *validator.Validate
}

func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, validator: validator.New()}
}

func (h *SupplierHandler) CreateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateSupplierRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create supplier input")

			return
		}

		req.Name = utils.Sanitize(req.Name)
		req.Address = utils.Sanitize(req.Address)

		for i, specialty := range req.Specialties {
			req.Specialties[i] = utils.Sanitize(specialty)
		}

		supplier, err := h.supplierService.CreateSupplier(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create supplier", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Supplier created successfully", slog.Int64("supplierId", supplier.ID))
		response.Success(w, http.StatusCreated, supplier)
	}
}

func (h *SupplierHandler) GetSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid supplier id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		supplier, err := h.supplierService.GetSupplierByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get supplier", slog.Int64("supplierId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, supplier)
	}
}

func (h *SupplierHandler) ListSuppliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		suppliers, err := h.supplierService.ListSuppliers(r.Context())
		if err != nil {
			logger.Error("Failed to list suppliers", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, suppliers)
	}
}

func (h *SupplierHandler) AddSpecialty() http.HandlerFunc {
	return h.specialtyChange(true)
}

func (h *SupplierHandler) RemoveSpecialty() http.HandlerFunc {
	return h.specialtyChange(false)
}

func (h *SupplierHandler) specialtyChange(add bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid supplier id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.SpecialtyRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid specialty input")

			return
		}

		specialty := utils.Sanitize(req.Specialty)

		var supplier *models.Supplier
		if add {
			supplier, err = h.supplierService.AddSpecialty(r.Context(), id, specialty)
		} else {
			supplier, err = h.supplierService.RemoveSpecialty(r.Context(), id, specialty)
		}

		if err != nil {
			logger.Error("Failed to change specialties", slog.Int64("supplierId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Supplier specialties updated", slog.Int64("supplierId", id))
		response.Success(w, http.StatusOK, supplier)
	}
}

func (h *SupplierHandler) SetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid supplier id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.SetSupplierActiveRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid supplier active input")

			return
		}

		supplier, err := h.supplierService.SetActive(r.Context(), id, *req.Active)
		if err != nil {
			logger.Error("Failed to set supplier active state", slog.Int64("supplierId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Supplier active state updated", slog.Int64("supplierId", id), slog.Bool("active", supplier.Active))
		response.Success(w, http.StatusOK, supplier)
	}
}
