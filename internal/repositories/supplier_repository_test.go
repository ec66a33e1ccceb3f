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

const supplierCols = "id, name, phone, email, address, reliability_rating, is_active, total_orders, orders_on_time, created_at, updated_at"

func supplierColumnNames() []string {
	return []string{"id", "name", "phone", "email", "address", "reliability_rating", "is_active", "total_orders", "orders_on_time", "created_at", "updated_at"}
}

func TestSupplierRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewSupplierRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateSupplier", func(t *testing.T) {
		// Arrange: row insert first, then one insert per specialty
		supplier := models.NewSupplier("Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way")
		supplier.AddSpecialty("Electronics")
		supplier.AddSpecialty("Hardware")

		mock.ExpectQuery(`INSERT INTO suppliers`).
			WithArgs(supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.ReliabilityRating, supplier.Active, supplier.TotalOrdersPlaced, supplier.OrdersDeliveredOnTime).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), now, now))
		mock.ExpectExec(`INSERT INTO supplier_specialties`).
			WithArgs(int64(2), "Electronics").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO supplier_specialties`).
			WithArgs(int64(2), "Hardware").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.CreateSupplier(ctx, supplier)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(2), supplier.ID, "Supplier ID should be updated")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetSupplierByID", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT ` + supplierCols + ` FROM suppliers WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(supplierColumnNames()).
				AddRow(int64(2), "Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way", 5.0, true, 3, 2, now, now))
		mock.ExpectQuery(`SELECT specialty FROM supplier_specialties WHERE supplier_id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"specialty"}).
				AddRow("Electronics").
				AddRow("Hardware"))

		// Act
		supplier, err := repo.GetSupplierByID(ctx, 2)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", supplier.Name)
		assert.Equal(t, 3, supplier.TotalOrdersPlaced)
		assert.Equal(t, []string{"Electronics", "Hardware"}, supplier.Specialties)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateSupplier", func(t *testing.T) {
		// Arrange: the specialty set is replaced wholesale
		supplier := &models.Supplier{
			ID:                2,
			Name:              "Acme Corp",
			Phone:             "555-0100",
			Email:             "sales@acme.test",
			Address:           "1 Acme Way",
			ReliabilityRating: 4.2,
			Active:            true,
			TotalOrdersPlaced: 5,
			Specialties:       []string{"Hardware"},
		}

		mock.ExpectQuery(`UPDATE suppliers SET name = \$1`).
			WithArgs(supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.ReliabilityRating, supplier.Active, supplier.TotalOrdersPlaced, supplier.OrdersDeliveredOnTime, supplier.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
		mock.ExpectExec(`DELETE FROM supplier_specialties WHERE supplier_id = \$1`).
			WithArgs(supplier.ID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO supplier_specialties`).
			WithArgs(supplier.ID, "Hardware").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateSupplier(ctx, supplier)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListSuppliers", func(t *testing.T) {
		// Arrange: specialties are fetched in one pass and joined in memory
		mock.ExpectQuery(`SELECT ` + supplierCols + ` FROM suppliers ORDER BY name`).
			WillReturnRows(sqlmock.NewRows(supplierColumnNames()).
				AddRow(int64(2), "Acme Corp", "555-0100", "sales@acme.test", "1 Acme Way", 5.0, true, 3, 2, now, now).
				AddRow(int64(3), "Globex", "555-0200", "info@globex.test", "2 Globex Blvd", 3.0, false, 4, 2, now, now))
		mock.ExpectQuery(`SELECT supplier_id, specialty FROM supplier_specialties ORDER BY supplier_id`).
			WillReturnRows(sqlmock.NewRows([]string{"supplier_id", "specialty"}).
				AddRow(int64(2), "Electronics").
				AddRow(int64(3), "Office Supplies"))

		// Act
		suppliers, err := repo.ListSuppliers(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, suppliers, 2)
		assert.Equal(t, []string{"Electronics"}, suppliers[0].Specialties)
		assert.Equal(t, []string{"Office Supplies"}, suppliers[1].Specialties)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
