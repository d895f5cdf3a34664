package models

import (
	"time"
)

// Customer maps a locally generated internal id to the processor's customer
// object. Pairs are immutable once written.
type Customer struct {
	ID               int       `json:"-" db:"id"`
	InternalID       string    `json:"internal_id" db:"internal_id"`
	Email            string    `json:"email" db:"email"`
	StripeCustomerID string    `json:"stripe_customer_id" db:"stripe_customer_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Payment is one recorded charge attempt. Rows are append-only; a redelivered
// webhook produces a second row for the same stripe_pid.
type Payment struct {
	ID         int       `json:"-" db:"id"`
	StripePID  string    `json:"stripe_pid" db:"stripe_pid"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Currency   string    `json:"currency" db:"currency"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
