package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/restockhq/inventory-platform/internal/api/middleware"
	"github.com/restockhq/inventory-platform/internal/models"
	service "github.com/restockhq/inventory-platform/internal/services"
	"github.com/restockhq/inventory-platform/internal/utils"
	"github.com/restockhq/inventory-platform/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")

			return
		}

		req.Notes = utils.Sanitize(req.Notes)

		order, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created successfully",
			slog.Int64("orderId", order.OrderID),
			slog.Int64("productId", order.ProductID),
			slog.Int64("supplierId", order.SupplierID))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders returns every order, newest first. An overdue=true query
// narrows the list to in-flight orders past their expected date.
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var (
			orders []*models.Order
			err    error
		)

		if r.URL.Query().Get("overdue") == "true" {
			orders, err = h.orderService.ListOverdueOrders(r.Context())
		} else {
			orders, err = h.orderService.ListOrders(r.Context())
		}

		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.OrderListResponse{
			Orders: orders,
			Total:  len(orders),
		})
	}
}

func (h *OrderHandler) ConfirmOrder() http.HandlerFunc {
	return h.transition("confirm", h.orderService.ConfirmOrder)
}

func (h *OrderHandler) ShipOrder() http.HandlerFunc {
	return h.transition("ship", h.orderService.ShipOrder)
}

func (h *OrderHandler) DeliverOrder() http.HandlerFunc {
	return h.transition("deliver", h.orderService.DeliverOrder)
}

func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return h.transition("cancel", h.orderService.CancelOrder)
}

func (h *OrderHandler) transition(action string, fn func(context.Context, int64) (*models.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		order, err := fn(r.Context(), id)
		if err != nil {
			logger.Error("Order transition failed",
				slog.String("action", action),
				slog.Int64("orderId", id),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order transitioned",
			slog.String("action", action),
			slog.Int64("orderId", id),
			slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
