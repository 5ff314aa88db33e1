package wallet

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
)

// ErrPaymentFailed is returned when the payment provider declines a charge.
var ErrPaymentFailed = errors.New("wallet: payment failed")

// PaymentGateway charges a payment method and returns a provider transaction
// id. The mock implementation stands in for a real provider integration.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method string) (string, error)
}

// MockGateway approves roughly nine out of ten charges.
type MockGateway struct {
	approve func() bool
}

// NewMockGateway returns gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		approve: func() bool { return rand.Float64() > 0.1 },
	}
}

// Charge simulates a provider charge.
func (g *MockGateway) Charge(_ context.Context, _ float64, _ string) (string, error) {
	if !g.approve() {
		return "", ErrPaymentFailed
	}
	return uuid.NewString(), nil
}
