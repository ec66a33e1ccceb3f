package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/restockhq/inventory-platform/internal/api/middleware"
	"github.com/restockhq/inventory-platform/internal/models"
	service "github.com/restockhq/inventory-platform/internal/services"
	"github.com/restockhq/inventory-platform/internal/utils"
	"github.com/restockhq/inventory-platform/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")

			return
		}

		req.Name = utils.Sanitize(req.Name)
		req.Category = utils.Sanitize(req.Category)

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")

			return
		}

		if req.Category != nil {
			clean := utils.Sanitize(*req.Category)
			req.Category = &clean
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product updated successfully", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, product)
	}
}

// for eg: GET /products?page=1&pageSize=10
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		products, total, err := h.productService.ListProducts(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.ProductListResponse{
			Products: products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *ProductHandler) SellProduct() http.HandlerFunc {
	return h.stockChange("sell", h.productService.SellProduct)
}

func (h *ProductHandler) RestockProduct() http.HandlerFunc {
	return h.stockChange("restock", h.productService.RestockProduct)
}

// stockChange is the shared shape of the two stock mutation endpoints.
func (h *ProductHandler) stockChange(action string, fn func(context.Context, int64, int) (*models.Product, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.StockChangeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid stock change input", slog.String("action", action))

			return
		}

		product, err := fn(r.Context(), id, req.Quantity)
		if err != nil {
			logger.Error("Stock change failed",
				slog.String("action", action),
				slog.Int64("productId", id),
				slog.Int("quantity", req.Quantity),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Stock changed",
			slog.String("action", action),
			slog.Int64("productId", id),
			slog.Int("quantity", req.Quantity),
			slog.String("stockStatus", string(product.StockStatus())))
		response.Success(w, http.StatusOK, product)
	}
}
