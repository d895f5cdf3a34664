package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/charplate01/tesla-checkout/internal/processor"
	"github.com/google/uuid"
)

const maxWebhookBody = 65536

// WebhookService validates inbound processor events and folds completed
// checkouts into the local ledger.
type WebhookService struct {
	ledger *LedgerService
	proc   processor.Processor
	secret string
}

func NewWebhookService(ledger *LedgerService, proc processor.Processor, secret string) *WebhookService {
	return &WebhookService{ledger: ledger, proc: proc, secret: secret}
}

// checkoutSessionObject is the slice of the event payload this service needs.
// The payload itself is never trusted as the record source; the payment intent
// is re-fetched from the processor.
type checkoutSessionObject struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	Customer      string `json:"customer"`
	CustomerEmail string `json:"customer_email"`
}

// HandleWebhook receives a processor event
// @Summary Receive a processor webhook
// @Description Verify and process an asynchronous processor event
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} object{received=bool}
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /webhook [post]
func (s *WebhookService) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		SendErrorResponse(w, "Failed to read request body", http.StatusBadRequest, nil)
		return
	}

	var event *processor.WebhookEvent
	if s.secret != "" {
		event, err = s.proc.VerifyWebhookSignature(payload, r.Header.Get("Stripe-Signature"), s.secret)
		if err != nil {
			log.Printf("[WEBHOOK] Signature verification failed: %v", err)
			SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
	} else {
		// No signing secret configured: the event is accepted unverified.
		log.Printf("[WEBHOOK] insecure mode: accepting unverified event")
		var raw struct {
			ID   string `json:"id"`
			Type string `json:"type"`
			Data struct {
				Object json.RawMessage `json:"object"`
			} `json:"data"`
		}
		if err := json.Unmarshal(payload, &raw); err != nil {
			SendErrorResponse(w, "Invalid event payload", http.StatusBadRequest, nil)
			return
		}
		event = &processor.WebhookEvent{ID: raw.ID, Type: raw.Type, Object: raw.Data.Object}
	}

	// Only completed checkout sessions trigger work; every other event type
	// is acknowledged without side effects.
	if event.Type == "checkout.session.completed" {
		if err := s.handleCheckoutCompleted(r.Context(), event.Object); err != nil {
			log.Printf("[WEBHOOK] Failed to process event %s: %v", event.ID, err)
			SendErrorResponse(w, "Failed to process event", http.StatusInternalServerError, nil)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"received": true})
}

func (s *WebhookService) handleCheckoutCompleted(ctx context.Context, object json.RawMessage) error {
	var session checkoutSessionObject
	if err := json.Unmarshal(object, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	if session.PaymentIntent == "" {
		return nil
	}

	pi, err := s.proc.GetPaymentIntent(ctx, session.PaymentIntent)
	if err != nil {
		return fmt.Errorf("fetch payment intent: %w", err)
	}

	if err := s.ledger.RecordPayment(pi); err != nil {
		return fmt.Errorf("record payment: %w", err)
	}

	// The payment row is committed; customer sync failures below are logged
	// and swallowed.
	if session.CustomerEmail != "" || pi.CustomerID != "" {
		s.syncCustomer(ctx, pi)
	}

	return nil
}

func (s *WebhookService) syncCustomer(ctx context.Context, pi *processor.PaymentIntent) {
	if pi.CustomerID == "" {
		return
	}

	cust, err := s.proc.GetCustomer(ctx, pi.CustomerID)
	if err != nil {
		log.Printf("[WEBHOOK] Customer sync skipped for %s: %v", pi.CustomerID, err)
		return
	}

	internalID := cust.Metadata["internal_id"]
	if internalID == "" {
		internalID = uuid.NewString()
	}

	if err := s.ledger.SaveCustomerRecord(internalID, cust.Email, cust.ID); err != nil {
		log.Printf("[WEBHOOK] Customer sync skipped for %s: %v", cust.ID, err)
	}
}
