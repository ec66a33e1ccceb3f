package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restockhq/inventory-platform/internal/models"
	repository "github.com/restockhq/inventory-platform/internal/repositories"
)

func orderJoinColumnNames() []string {
	return []string{
		"order_id", "product_id", "supplier_id", "quantity_ordered", "order_date", "expected_delivery_date", "status", "total_cost", "notes", "created_at", "updated_at",
		"p.id", "p.name", "p.category", "p.quantity", "p.min_threshold", "p.price", "p.sold_count", "p.created_at", "p.updated_at",
		"s.id", "s.name", "s.phone", "s.email", "s.address", "s.reliability_rating", "s.is_active", "s.total_orders", "s.orders_on_time", "s.created_at", "s.updated_at",
	}
}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateOrder", func(t *testing.T) {
		// Arrange: the order carries its own id, nothing is generated here
		order := &models.Order{
			OrderID:              1001,
			ProductID:            1,
			SupplierID:           2,
			QuantityOrdered:      10,
			OrderDate:            now,
			ExpectedDeliveryDate: now.AddDate(0, 0, 7),
			Status:               models.OrderStatusPending,
			TotalCost:            600.0,
			Notes:                "rush",
		}

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.OrderID, order.ProductID, order.SupplierID, order.QuantityOrdered, order.OrderDate, order.ExpectedDeliveryDate, "PENDING", order.TotalCost, order.Notes).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1001), order.OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`FROM orders o\s+JOIN products p ON o\.product_id = p\.id\s+JOIN suppliers s ON o\.supplier_id = s\.id\s+WHERE o\.order_id = \$1`).
			WithArgs(int64(1001)).
			WillReturnRows(sqlmock.NewRows(orderJoinColumnNames()).
				AddRow(
					int64(1001), int64(1), int64(2), 10, now, now.AddDate(0, 0, 7), "SHIPPED", 600.0, "rush", now, now,
					int64(1), "Widget", "Hardware", 100, 10, 2.5, 40, now, now,
					int64(2), "Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way", 5.0, true, 3, 2, now, now,
				))

		// Act
		order, err := repo.GetOrderByID(ctx, 1001)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
		require.NotNil(t, order.Product)
		assert.Equal(t, "Widget", order.Product.Name)
		require.NotNil(t, order.Supplier)
		assert.Equal(t, "Acme Corp", order.Supplier.Name)
		assert.Equal(t, 3, order.Supplier.TotalOrdersPlaced)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateOrder", func(t *testing.T) {
		// Arrange
		order := &models.Order{
			OrderID:              1001,
			Status:               models.OrderStatusConfirmed,
			ExpectedDeliveryDate: now.AddDate(0, 0, 7),
			Notes:                "rush",
		}

		mock.ExpectQuery(`UPDATE orders SET status = \$1`).
			WithArgs("CONFIRMED", order.ExpectedDeliveryDate, order.Notes, order.OrderID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		// Act
		err := repo.UpdateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListOrders", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`FROM orders o\s+JOIN products p ON o\.product_id = p\.id\s+JOIN suppliers s ON o\.supplier_id = s\.id\s+ORDER BY o\.order_date DESC`).
			WillReturnRows(sqlmock.NewRows(orderJoinColumnNames()).
				AddRow(
					int64(1002), int64(1), int64(2), 5, now, now.AddDate(0, 0, 7), "PENDING", 300.0, "", now, now,
					int64(1), "Widget", "Hardware", 100, 10, 2.5, 40, now, now,
					int64(2), "Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way", 5.0, true, 3, 2, now, now,
				).
				AddRow(
					int64(1001), int64(1), int64(2), 10, now.AddDate(0, 0, -1), now.AddDate(0, 0, 6), "DELIVERED", 600.0, "rush", now, now,
					int64(1), "Widget", "Hardware", 100, 10, 2.5, 40, now, now,
					int64(2), "Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way", 5.0, true, 3, 2, now, now,
				))

		// Act
		orders, err := repo.ListOrders(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, int64(1002), orders[0].OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MaxOrderID", func(t *testing.T) {
		t.Run("Existing Orders", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(`SELECT MAX\(order_id\) FROM orders`).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(1042)))

			// Act
			maxID, err := repo.MaxOrderID(ctx)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(1042), maxID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Empty Table", func(t *testing.T) {
			// Arrange: MAX over no rows yields NULL
			mock.ExpectQuery(`SELECT MAX\(order_id\) FROM orders`).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

			// Act
			maxID, err := repo.MaxOrderID(ctx)

			// Assert
			require.NoError(t, err)
			assert.Zero(t, maxID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
