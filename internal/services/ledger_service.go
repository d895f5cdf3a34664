package services

import (
	"database/sql"
	"time"

	"github.com/charplate01/tesla-checkout/internal/models"
	"github.com/charplate01/tesla-checkout/internal/processor"
)

// LedgerService is the local store: the customer identity mapping and the
// append-only payment ledger. Each call opens a short-lived statement; there
// is no long-lived transaction and no application-level locking.
type LedgerService struct {
	db *sql.DB
}

func NewLedgerService(db *sql.DB) *LedgerService {
	return &LedgerService{db: db}
}

// FindCustomerByEmail returns the stored mapping for an email, or nil when no
// mapping exists.
func (s *LedgerService) FindCustomerByEmail(email string) (*models.Customer, error) {
	var (
		cust       models.Customer
		emailCol   sql.NullString
		createdCol sql.NullTime
	)
	err := s.db.QueryRow(`
		SELECT internal_id, email, stripe_customer_id, created_at
		FROM customers
		WHERE email = ?`, email).
		Scan(&cust.InternalID, &emailCol, &cust.StripeCustomerID, &createdCol)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cust.Email = emailCol.String
	cust.CreatedAt = createdCol.Time
	return &cust, nil
}

// SaveCustomerRecord inserts a customer mapping if absent. An existing row for
// the same internal or remote customer id is left untouched, so pairs are
// immutable once written.
func (s *LedgerService) SaveCustomerRecord(internalID, email, stripeCustomerID string) error {
	var emailVal any
	if email != "" {
		emailVal = email
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO customers (internal_id, email, stripe_customer_id, created_at)
		VALUES (?, ?, ?, ?)`,
		internalID, emailVal, stripeCustomerID, time.Now().UTC())
	return err
}

// RecordPayment appends one row for a charge attempt. No de-duplication is
// performed: a redelivered webhook appends a second row for the same intent.
func (s *LedgerService) RecordPayment(pi *processor.PaymentIntent) error {
	var customerVal any
	if pi.CustomerID != "" {
		customerVal = pi.CustomerID
	}

	_, err := s.db.Exec(`
		INSERT INTO payments (stripe_pid, customer_id, amount, currency, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pi.ID, customerVal, pi.Amount, pi.Currency, pi.Status, time.Now().UTC())
	return err
}

// ListCustomers returns all stored mappings, newest first.
func (s *LedgerService) ListCustomers() ([]models.Customer, error) {
	rows, err := s.db.Query(`
		SELECT internal_id, email, stripe_customer_id, created_at
		FROM customers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var (
			cust       models.Customer
			emailCol   sql.NullString
			createdCol sql.NullTime
		)
		if err := rows.Scan(&cust.InternalID, &emailCol, &cust.StripeCustomerID, &createdCol); err != nil {
			return nil, err
		}
		cust.Email = emailCol.String
		cust.CreatedAt = createdCol.Time
		customers = append(customers, cust)
	}
	return customers, rows.Err()
}
