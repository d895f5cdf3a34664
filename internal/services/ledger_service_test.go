package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/charplate01/tesla-checkout/internal/processor"
	"github.com/stretchr/testify/assert"
)

func TestLedgerService_FindCustomerByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewLedgerService(db)

	t.Run("existing mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT internal_id, email, stripe_customer_id, created_at FROM customers WHERE email = \\?").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"internal_id", "email", "stripe_customer_id", "created_at"}).
				AddRow("int-1", "alice@example.com", "cus_123", time.Now()))

		cust, err := service.FindCustomerByEmail("alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, cust)
		assert.Equal(t, "int-1", cust.InternalID)
		assert.Equal(t, "cus_123", cust.StripeCustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT internal_id, email, stripe_customer_id, created_at FROM customers WHERE email = \\?").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"internal_id", "email", "stripe_customer_id", "created_at"}))

		cust, err := service.FindCustomerByEmail("nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, cust)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerService_SaveCustomerRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewLedgerService(db)

	t.Run("insert with email", func(t *testing.T) {
		mock.ExpectExec("INSERT OR IGNORE INTO customers").
			WithArgs("int-1", "alice@example.com", "cus_123", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := service.SaveCustomerRecord("int-1", "alice@example.com", "cus_123")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert without email stores null", func(t *testing.T) {
		mock.ExpectExec("INSERT OR IGNORE INTO customers").
			WithArgs("int-2", nil, "cus_456", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))

		err := service.SaveCustomerRecord("int-2", "", "cus_456")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing mapping is kept", func(t *testing.T) {
		// INSERT OR IGNORE reports zero affected rows; the call still succeeds.
		mock.ExpectExec("INSERT OR IGNORE INTO customers").
			WithArgs("int-3", "alice@example.com", "cus_789", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := service.SaveCustomerRecord("int-3", "alice@example.com", "cus_789")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerService_RecordPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewLedgerService(db)

	t.Run("payment with customer", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO payments").
			WithArgs("pi_1", "cus_123", int64(5000), "usd", "succeeded", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := service.RecordPayment(&processor.PaymentIntent{
			ID:         "pi_1",
			Amount:     5000,
			Currency:   "usd",
			Status:     "succeeded",
			CustomerID: "cus_123",
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("anonymous payment stores null customer", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO payments").
			WithArgs("pi_2", nil, int64(0), "usd", "succeeded", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))

		err := service.RecordPayment(&processor.PaymentIntent{
			ID:       "pi_2",
			Amount:   0,
			Currency: "usd",
			Status:   "succeeded",
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same intent recorded twice appends twice", func(t *testing.T) {
		pi := &processor.PaymentIntent{ID: "pi_3", Amount: 100, Currency: "usd", Status: "succeeded", CustomerID: "cus_123"}

		mock.ExpectExec("INSERT INTO payments").
			WithArgs("pi_3", "cus_123", int64(100), "usd", "succeeded", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectExec("INSERT INTO payments").
			WithArgs("pi_3", "cus_123", int64(100), "usd", "succeeded", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(4, 1))

		assert.NoError(t, service.RecordPayment(pi))
		assert.NoError(t, service.RecordPayment(pi))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerService_ListCustomers(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewLedgerService(db)

	t.Run("newest first", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT internal_id, email, stripe_customer_id, created_at FROM customers ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows([]string{"internal_id", "email", "stripe_customer_id", "created_at"}).
				AddRow("int-2", "bob@example.com", "cus_456", now).
				AddRow("int-1", nil, "cus_123", now.Add(-time.Hour)))

		customers, err := service.ListCustomers()
		assert.NoError(t, err)
		assert.Len(t, customers, 2)
		assert.Equal(t, "int-2", customers[0].InternalID)
		assert.Equal(t, "", customers[1].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store", func(t *testing.T) {
		mock.ExpectQuery("SELECT internal_id, email, stripe_customer_id, created_at FROM customers ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows([]string{"internal_id", "email", "stripe_customer_id", "created_at"}))

		customers, err := service.ListCustomers()
		assert.NoError(t, err)
		assert.Empty(t, customers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
