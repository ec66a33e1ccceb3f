package models

import (
	"context"
	"fmt"
	"time"

	loopfsm "github.com/looplab/fsm"

	"github.com/restockhq/inventory-platform/internal/errors"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

const (
	eventConfirm = "confirm"
	eventShip    = "ship"
	eventDeliver = "deliver"
	eventCancel  = "cancel"

	// Purchase orders are placed at a wholesale discount off the retail
	// price. The cost is fixed when the order is created and is never
	// recomputed, even if the product is repriced later.
	wholesaleFactor = 0.6

	defaultDeliveryDays = 7
)

// orderEvents describes the full lifecycle. SHIPPED orders cannot be
// cancelled, and DELIVERED/CANCELLED are terminal.
var orderEvents = []loopfsm.EventDesc{
	{Name: eventConfirm, Src: []string{string(OrderStatusPending)}, Dst: string(OrderStatusConfirmed)},
	{Name: eventShip, Src: []string{string(OrderStatusConfirmed)}, Dst: string(OrderStatusShipped)},
	{Name: eventDeliver, Src: []string{string(OrderStatusShipped)}, Dst: string(OrderStatusDelivered)},
	{Name: eventCancel, Src: []string{string(OrderStatusPending), string(OrderStatusConfirmed)}, Dst: string(OrderStatusCancelled)},
}

type Order struct {
	OrderID              int64       `json:"order_id"`
	ProductID            int64       `json:"product_id"`
	SupplierID           int64       `json:"supplier_id"`
	QuantityOrdered      int         `json:"quantity_ordered"`
	OrderDate            time.Time   `json:"order_date"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date"`
	Status               OrderStatus `json:"status"`
	TotalCost            float64     `json:"total_cost"`
	Notes                string      `json:"notes"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	Product  *Product  `json:"product,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}

// NewOrder builds a PENDING order against a product and supplier. The id
// comes from the injected sequence, not from storage; suppliers get their
// id from the database, orders deliberately do not.
func NewOrder(seq *Sequence, product *Product, supplier *Supplier, quantity int, notes string) (*Order, error) {
	if quantity <= 0 {
		return nil, errors.InvalidQuantityError(fmt.Sprintf("Order quantity must be positive, got %d", quantity))
	}

	now := time.Now()

	return &Order{
		OrderID:              seq.Next(),
		ProductID:            product.ID,
		SupplierID:           supplier.ID,
		QuantityOrdered:      quantity,
		OrderDate:            now,
		ExpectedDeliveryDate: now.AddDate(0, 0, defaultDeliveryDays),
		Status:               OrderStatusPending,
		TotalCost:            float64(quantity) * product.Price * wholesaleFactor,
		Notes:                notes,
		Product:              product,
		Supplier:             supplier,
	}, nil
}

// transition runs a lifecycle event through a short-lived FSM seeded with
// the order's current status. looplab/fsm tracks state internally, so a
// fresh machine is built per call.
func (o *Order) transition(event string) error {
	machine := loopfsm.NewFSM(string(o.Status), orderEvents, nil)

	if err := machine.Event(context.Background(), event); err != nil {
		return errors.InvalidStateTransitionError(
			fmt.Sprintf("Cannot %s order #%d in status %s", event, o.OrderID, o.Status)).WithError(err)
	}

	o.Status = OrderStatus(machine.Current())

	return nil
}

// Confirm moves PENDING to CONFIRMED.
func (o *Order) Confirm() error {
	return o.transition(eventConfirm)
}

// Ship moves CONFIRMED to SHIPPED.
func (o *Order) Ship() error {
	return o.transition(eventShip)
}

// Deliver moves SHIPPED to DELIVERED and restocks the ordered product.
// The status change and the restock are one logical unit; callers must
// persist both entities.
func (o *Order) Deliver() error {
	if o.Product == nil {
		return errors.InternalError(fmt.Sprintf("Order #%d has no product loaded", o.OrderID))
	}

	if err := o.transition(eventDeliver); err != nil {
		return err
	}

	return o.Product.Restock(o.QuantityOrdered)
}

// Cancel moves PENDING or CONFIRMED to CANCELLED. There are no
// compensating stock or supplier effects.
func (o *Order) Cancel() error {
	return o.transition(eventCancel)
}

// IsOverdue reports whether the expected delivery date has passed while
// the order is still in flight. It is a pure query; no penalty or
// transition is triggered.
func (o *Order) IsOverdue(now time.Time) bool {
	if o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled {
		return false
	}

	return now.After(o.ExpectedDeliveryDate)
}

func (o *Order) DaysUntilDelivery(now time.Time) int {
	return int(o.ExpectedDeliveryDate.Sub(now).Hours() / 24)
}

func (o *Order) StatusDescription() string {
	switch o.Status {
	case OrderStatusPending:
		return "Order placed, awaiting confirmation"
	case OrderStatusConfirmed:
		return "Order confirmed by supplier"
	case OrderStatusShipped:
		return "Order shipped, in transit"
	case OrderStatusDelivered:
		return "Order delivered successfully"
	case OrderStatusCancelled:
		return "Order cancelled"
	default:
		return "Unknown status"
	}
}

type CreateOrderRequest struct {
	ProductID            int64      `json:"product_id" validate:"required,gt=0"`
	SupplierID           int64      `json:"supplier_id" validate:"required,gt=0"`
	Quantity             int        `json:"quantity" validate:"required,gt=0"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	Notes                string     `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type OrderListResponse struct {
	Orders []*Order `json:"orders"`
	Total  int      `json:"total"`
}
