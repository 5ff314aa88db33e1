package wallet

import (
	"context"

	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

// Service coordinates the ledger with the payment gateway.
type Service struct {
	ledger  *Ledger
	gateway PaymentGateway
	logger  *zap.Logger
}

// NewService builds service.
func NewService(ledger *Ledger, gateway PaymentGateway, logger *zap.Logger) *Service {
	return &Service{ledger: ledger, gateway: gateway, logger: logger}
}

// Ledger exposes the underlying ledger for read paths and redemption.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// TopUpResult confirms a completed wallet top-up.
type TopUpResult struct {
	TransactionID string             `json:"transactionId"`
	Amount        float64            `json:"amount"`
	PaymentMethod string             `json:"paymentMethod"`
	NewBalance    float64            `json:"newBalance"`
	Entry         models.Transaction `json:"transaction"`
}

// AddFunds validates the amount, charges the gateway and, only on a
// confirmed charge, credits the ledger. A declined charge leaves wallet
// state unchanged; the caller re-invokes explicitly.
func (s *Service) AddFunds(ctx context.Context, amount float64, method string) (TopUpResult, error) {
	if err := ValidateTopUp(amount); err != nil {
		return TopUpResult{}, err
	}

	providerTxID, err := s.gateway.Charge(ctx, amount, method)
	if err != nil {
		s.logger.Warn("top-up declined", zap.Float64("amount", amount), zap.String("method", method))
		return TopUpResult{}, err
	}

	newBalance, entry := s.ledger.Credit(amount, "Added to Wallet")
	s.logger.Info("wallet topped up",
		zap.Float64("amount", amount),
		zap.Float64("new_balance", newBalance),
		zap.String("provider_tx_id", providerTxID),
	)

	return TopUpResult{
		TransactionID: providerTxID,
		Amount:        amount,
		PaymentMethod: method,
		NewBalance:    newBalance,
		Entry:         entry,
	}, nil
}
