package services

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/charplate01/tesla-checkout/internal/processor"
)

const productName = "Tesla Event Access"

// CheckoutService builds checkout sessions and the administrative off-session
// charge and subscription operations against the remote processor.
type CheckoutService struct {
	ledger         *LedgerService
	reconciler     *ReconcilerService
	proc           processor.Processor
	captcha        *CaptchaService
	qr             *QRService
	validator      *ValidationHelper
	publishableKey string
}

func NewCheckoutService(ledger *LedgerService, reconciler *ReconcilerService, proc processor.Processor, captcha *CaptchaService, publishableKey string) *CheckoutService {
	return &CheckoutService{
		ledger:         ledger,
		reconciler:     reconciler,
		proc:           proc,
		captcha:        captcha,
		qr:             NewQRService(),
		validator:      NewValidationHelper(),
		publishableKey: publishableKey,
	}
}

type checkoutSessionResponse struct {
	URL          string  `json:"url"`
	ID           string  `json:"id"`
	ClientSecret *string `json:"clientSecret"`
	QRCode       string  `json:"qrCode,omitempty"`
}

// CreateCheckoutSession starts a one-time card checkout
// @Summary Create a checkout session
// @Description Start a hosted checkout for a one-time payment, retaining the card for future off-session use
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body object{amount=int64,email=string,recaptcha_token=string} false "Checkout request"
// @Success 200 {object} object{url=string,id=string,clientSecret=string,qrCode=string}
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /create-checkout-session [post]
func (s *CheckoutService) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount         int64  `json:"amount"`
		Email          string `json:"email"`
		RecaptchaToken string `json:"recaptcha_token"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)

	// An empty body is a valid anonymous zero-amount checkout.
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if s.captcha.Enabled() {
		ok, err := s.captcha.Verify(r.Context(), req.RecaptchaToken)
		if err != nil || !ok {
			if err != nil {
				log.Printf("[CHECKOUT] reCAPTCHA verification error: %v", err)
			}
			SendErrorResponse(w, "reCAPTCHA verification failed", http.StatusBadRequest, nil)
			return
		}
	}

	customerID := ""
	if req.Email != "" {
		var err error
		customerID, _, err = s.reconciler.Reconcile(r.Context(), req.Email)
		if err != nil {
			log.Printf("[CHECKOUT] Failed to reconcile customer: %v", err)
			SendErrorResponse(w, "Failed to create customer", http.StatusInternalServerError, nil)
			return
		}
	}

	// A non-positive amount becomes a zero-amount line item, not a rejection.
	amount := req.Amount
	if amount <= 0 {
		amount = 0
	}

	base := requestBaseURL(r)
	params := processor.CheckoutSessionParams{
		AmountCents: amount,
		Currency:    "usd",
		ProductName: productName,
		SuccessURL:  base + "success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   base + "cancel.html",
	}
	if req.Email != "" && customerID == "" {
		params.CustomerEmail = req.Email
	}

	session, err := s.proc.CreateCheckoutSession(r.Context(), params)
	if err != nil {
		log.Printf("[CHECKOUT] Failed to create session: %v", err)
		SendErrorResponse(w, "Failed to create checkout session", http.StatusInternalServerError, nil)
		return
	}

	resp := checkoutSessionResponse{URL: session.URL, ID: session.ID}
	if qrImage, err := s.qr.EncodeURL(session.URL); err == nil {
		resp.QRCode = qrImage
	} else {
		log.Printf("[CHECKOUT] Failed to render QR code: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetPublicConfig returns the publishable key
// @Summary Client configuration
// @Description Return the publishable key used by the static checkout page
// @Tags checkout
// @Produce json
// @Success 200 {object} object{publishableKey=string}
// @Router /config [get]
func (s *CheckoutService) GetPublicConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"publishableKey": s.publishableKey})
}

// AdminListCustomers lists stored customer mappings
// @Summary List customers
// @Description List all stored customer identity mappings, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} object{customers=[]models.Customer}
// @Failure 401 {string} string
// @Failure 500 {object} services.ErrorResponse
// @Router /admin/customers [get]
func (s *CheckoutService) AdminListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.ledger.ListCustomers()
	if err != nil {
		log.Printf("[ADMIN] Failed to list customers: %v", err)
		SendErrorResponse(w, "Failed to list customers", http.StatusInternalServerError, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"customers": customers})
}

// AdminCharge charges a stored customer off-session
// @Summary Charge a saved customer
// @Description Create and confirm an off-session payment intent using the customer's first saved card
// @Tags admin
// @Accept json
// @Produce json
// @Param request body object{customerId=string,amount=int64,currency=string} true "Charge request"
// @Success 200 {object} object{paymentIntent=processor.PaymentIntent}
// @Failure 400 {object} services.ErrorResponse
// @Failure 402 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /admin/charge [post]
func (s *CheckoutService) AdminCharge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customerId" validate:"required"`
		Amount     int64  `json:"amount" validate:"required,gt=0"`
		Currency   string `json:"currency"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "customerId and positive amount required", http.StatusBadRequest, err)
		return
	}

	if req.Currency == "" {
		req.Currency = "usd"
	}

	methods, err := s.proc.ListCardPaymentMethods(r.Context(), req.CustomerID, 1)
	if err != nil {
		log.Printf("[ADMIN] Failed to list payment methods for %s: %v", req.CustomerID, err)
		SendErrorResponse(w, "Failed to look up payment methods", http.StatusInternalServerError, nil)
		return
	}
	if len(methods) == 0 {
		SendErrorResponse(w, "No saved payment method", http.StatusBadRequest, nil)
		return
	}

	pi, err := s.proc.CreatePaymentIntent(r.Context(), processor.PaymentIntentParams{
		AmountCents:   req.Amount,
		Currency:      req.Currency,
		CustomerID:    req.CustomerID,
		PaymentMethod: methods[0].ID,
		Description:   "Admin charge",
	})
	if err != nil {
		var declined *processor.CardDeclinedError
		if errors.As(err, &declined) {
			SendUpstreamError(w, "card_error", declined.Message, http.StatusPaymentRequired)
			return
		}
		SendUpstreamError(w, "error", err.Error(), http.StatusInternalServerError)
		return
	}

	// Declined-but-created intents are still recorded; only a failed create
	// request skips the ledger.
	if err := s.ledger.RecordPayment(pi); err != nil {
		log.Printf("[ADMIN] Failed to record payment %s: %v", pi.ID, err)
		SendErrorResponse(w, "Failed to record payment", http.StatusInternalServerError, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"paymentIntent": pi})
}

// AdminCreateSubscription creates a subscription for a stored customer
// @Summary Create a subscription
// @Description Create a subscription for a stored customer using their first saved card
// @Tags admin
// @Accept json
// @Produce json
// @Param request body object{customerId=string,priceId=string} true "Subscription request"
// @Success 200 {object} object{subscription=processor.Subscription}
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /admin/create-subscription [post]
func (s *CheckoutService) AdminCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customerId" validate:"required"`
		PriceID    string `json:"priceId" validate:"required"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "customerId and priceId required", http.StatusBadRequest, err)
		return
	}

	methods, err := s.proc.ListCardPaymentMethods(r.Context(), req.CustomerID, 1)
	if err != nil {
		log.Printf("[ADMIN] Failed to list payment methods for %s: %v", req.CustomerID, err)
		SendErrorResponse(w, "Failed to look up payment methods", http.StatusInternalServerError, nil)
		return
	}
	if len(methods) == 0 {
		SendErrorResponse(w, "No saved card payment method", http.StatusBadRequest, nil)
		return
	}

	sub, err := s.proc.CreateSubscription(r.Context(), req.CustomerID, req.PriceID, methods[0].ID)
	if err != nil {
		SendUpstreamError(w, "error", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"subscription": sub})
}

// requestBaseURL rebuilds the request's own base URL so redirect targets point
// back at whatever host served the checkout.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
