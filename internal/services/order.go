package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/restockhq/inventory-platform/internal/errors"
	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ListOverdueOrders(ctx context.Context) ([]*models.Order, error)
	ConfirmOrder(ctx context.Context, orderID int64) (*models.Order, error)
	ShipOrder(ctx context.Context, orderID int64) (*models.Order, error)
	DeliverOrder(ctx context.Context, orderID int64) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	seq          *models.Sequence
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, seq *models.Sequence) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, supplierRepo: supplierRepo, seq: seq}
}

// CreateOrder builds a PENDING order and credits the supplier's
// placement counter. The order and supplier writes are sequential and
// non-transactional: if the supplier write fails the order stays
// persisted and the failure is surfaced, not rolled back.
func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	supplier, err := s.supplierRepo.GetSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return nil, errors.NotFoundError("Supplier not found").WithError(err)
	}

	order, err := models.NewOrder(s.seq, product, supplier, req.Quantity, req.Notes)
	if err != nil {
		return nil, err
	}

	if req.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = *req.ExpectedDeliveryDate
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	supplier.RecordOrder()

	if err := s.supplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, errors.DatabaseError("Failed to update supplier after order creation").
			WithDetail("Order was persisted but the supplier's placement counter was not").
			WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// ListOverdueOrders is a pure query; an overdue order is not penalized
// or transitioned.
func (s *orderService) ListOverdueOrders(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var overdue []*models.Order

	for _, order := range orders {
		if order.IsOverdue(now) {
			overdue = append(overdue, order)
		}
	}

	return overdue, nil
}

func (s *orderService) ConfirmOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return s.transition(ctx, orderID, (*models.Order).Confirm)
}

func (s *orderService) ShipOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return s.transition(ctx, orderID, (*models.Order).Ship)
}

func (s *orderService) CancelOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return s.transition(ctx, orderID, (*models.Order).Cancel)
}

func (s *orderService) transition(ctx context.Context, orderID int64, fn func(*models.Order) error) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if err := fn(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to update order").WithError(err)
	}

	return order, nil
}

// DeliverOrder marks the order delivered, restocks the product, and
// credits the supplier with an on-time delivery. Every delivery counts
// as on-time; the late-delivery rule exists on the supplier but nothing
// calls it here. The three writes are sequential; any that fail are
// reported together, and the ones that succeeded stay written.
func (s *orderService) DeliverOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if err := order.Deliver(); err != nil {
		return nil, err
	}

	order.Supplier.RecordOnTimeDelivery()

	var failed []string

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		failed = append(failed, "order")

		slog.Error("Failed to persist delivered order", slog.Int64("order_id", order.OrderID), slog.String("error", err.Error()))
	}

	if err := s.productRepo.UpdateProduct(ctx, order.Product); err != nil {
		failed = append(failed, "product")

		slog.Error("Failed to persist restocked product", slog.String("product", order.Product.Name), slog.String("error", err.Error()))
	}

	if err := s.supplierRepo.UpdateSupplier(ctx, order.Supplier); err != nil {
		failed = append(failed, "supplier")

		slog.Error("Failed to persist supplier delivery record", slog.String("supplier", order.Supplier.Name), slog.String("error", err.Error()))
	}

	if len(failed) > 0 {
		return nil, errors.DatabaseError("Failed to persist delivery").
			WithDetail("Writes failed for: " + strings.Join(failed, ", "))
	}

	return order, nil
}
