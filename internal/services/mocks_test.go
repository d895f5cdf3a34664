package services

import (
	"context"

	"github.com/charplate01/tesla-checkout/internal/processor"
	"github.com/stretchr/testify/mock"
)

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) CreateCustomer(ctx context.Context, email string, metadata map[string]string) (*processor.Customer, error) {
	args := m.Called(ctx, email, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.Customer), args.Error(1)
}

func (m *MockProcessor) GetCustomer(ctx context.Context, id string) (*processor.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.Customer), args.Error(1)
}

func (m *MockProcessor) CreateCheckoutSession(ctx context.Context, params processor.CheckoutSessionParams) (*processor.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.CheckoutSession), args.Error(1)
}

func (m *MockProcessor) CreatePaymentIntent(ctx context.Context, params processor.PaymentIntentParams) (*processor.PaymentIntent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.PaymentIntent), args.Error(1)
}

func (m *MockProcessor) GetPaymentIntent(ctx context.Context, id string) (*processor.PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.PaymentIntent), args.Error(1)
}

func (m *MockProcessor) ListCardPaymentMethods(ctx context.Context, customerID string, limit int64) ([]*processor.PaymentMethod, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*processor.PaymentMethod), args.Error(1)
}

func (m *MockProcessor) CreateSubscription(ctx context.Context, customerID, priceID, paymentMethodID string) (*processor.Subscription, error) {
	args := m.Called(ctx, customerID, priceID, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.Subscription), args.Error(1)
}

func (m *MockProcessor) VerifyWebhookSignature(payload []byte, sigHeader, secret string) (*processor.WebhookEvent, error) {
	args := m.Called(payload, sigHeader, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processor.WebhookEvent), args.Error(1)
}
