package processor

import (
	"context"
	"encoding/json"
)

// Customer is the processor-side customer object.
type Customer struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata"`
}

// CheckoutSession is a hosted payment flow returned by the processor.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutSessionParams describes a one-time card checkout. The processor is
// instructed to retain the payment method for future off-session use.
type CheckoutSessionParams struct {
	AmountCents   int64
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// PaymentIntent is a charge attempt as reported by the processor.
type PaymentIntent struct {
	ID         string `json:"id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	CustomerID string `json:"customer"`
}

// PaymentIntentParams describes an off-session charge against a saved card.
type PaymentIntentParams struct {
	AmountCents   int64
	Currency      string
	CustomerID    string
	PaymentMethod string
	Description   string
}

// PaymentMethod is a saved payment instrument.
type PaymentMethod struct {
	ID string `json:"id"`
}

// Subscription is a recurring billing agreement.
type Subscription struct {
	ID                  string `json:"id"`
	Status              string `json:"status"`
	CustomerID          string `json:"customer"`
	LatestInvoiceID     string `json:"latest_invoice_id,omitempty"`
	LatestInvoiceStatus string `json:"latest_invoice_status,omitempty"`
}

// WebhookEvent is a processor notification. Object holds the raw JSON of the
// event's data object.
type WebhookEvent struct {
	ID     string
	Type   string
	Object json.RawMessage
}

// CardDeclinedError carries the processor's user-facing decline message so it
// can be surfaced distinctly from generic upstream failures.
type CardDeclinedError struct {
	Message string
}

func (e *CardDeclinedError) Error() string {
	return "card declined: " + e.Message
}

// Processor is the remote payment processor as an injected capability. All
// card custody and PCI scope lives behind this interface.
type Processor interface {
	CreateCustomer(ctx context.Context, email string, metadata map[string]string) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
	ListCardPaymentMethods(ctx context.Context, customerID string, limit int64) ([]*PaymentMethod, error)
	CreateSubscription(ctx context.Context, customerID, priceID, paymentMethodID string) (*Subscription, error)
	VerifyWebhookSignature(payload []byte, sigHeader, secret string) (*WebhookEvent, error)
}
