package wallet

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

func newTestLedger() *Ledger {
	ledger := NewLedger(zap.NewNop())
	ledger.now = func() time.Time { return time.Date(2024, time.December, 20, 12, 0, 0, 0, time.UTC) }
	ids := 0
	ledger.newID = func() string {
		ids++
		return map[int]string{1: "tx-1", 2: "tx-2", 3: "tx-3"}[ids]
	}
	return ledger
}

func TestRedeemCreditsSuccess(t *testing.T) {
	ledger := newTestLedger()

	tx, err := ledger.RedeemCredits("swiggy", 150)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}

	if got := ledger.CarbonCredits(); got != 610 {
		t.Fatalf("expected 610 credits remaining, got %d", got)
	}
	if tx.Kind != models.TransactionDebit {
		t.Fatalf("expected debit transaction, got %s", tx.Kind)
	}
	if tx.Amount != 150 {
		t.Fatalf("expected amount 150, got %v", tx.Amount)
	}
	if !strings.Contains(tx.Title, "Swiggy") {
		t.Fatalf("expected title to reference Swiggy, got %q", tx.Title)
	}

	snap := ledger.Snapshot()
	if len(snap.Transactions) != 5 {
		t.Fatalf("expected 5 transactions after redemption, got %d", len(snap.Transactions))
	}
	if snap.Transactions[0].ID != tx.ID {
		t.Fatalf("new transaction must be prepended, got head %s", snap.Transactions[0].ID)
	}
}

func TestRedeemCreditsBelowMinimum(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.RedeemCredits("swiggy", 50)
	if !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
	if !strings.Contains(err.Error(), "150") {
		t.Fatalf("error should carry the partner minimum, got %q", err.Error())
	}

	if got := ledger.CarbonCredits(); got != 760 {
		t.Fatalf("failed redemption must not change credits, got %d", got)
	}
	if got := len(ledger.Snapshot().Transactions); got != 4 {
		t.Fatalf("failed redemption must not append transactions, got %d", got)
	}
}

func TestRedeemCreditsInsufficient(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.RedeemCredits("swiggy", 1000)
	if !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	if got := ledger.CarbonCredits(); got != 760 {
		t.Fatalf("balance must be unchanged, got %d", got)
	}
}

func TestRedeemCreditsUnknownPartner(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.RedeemCredits("nope", 500)
	if !errors.Is(err, ErrPartnerNotFound) {
		t.Fatalf("expected ErrPartnerNotFound, got %v", err)
	}
	if got := ledger.CarbonCredits(); got != 760 {
		t.Fatalf("balance must be unchanged, got %d", got)
	}
}

func TestRedeemCreditsNeverGoesNegative(t *testing.T) {
	ledger := newTestLedger()

	for _, amount := range []int{761, 1000, 100000} {
		if _, err := ledger.RedeemCredits("vibro-cafe", amount); err == nil {
			t.Fatalf("redeeming %d of 760 should fail", amount)
		}
		if got := ledger.CarbonCredits(); got != 760 {
			t.Fatalf("credits changed after rejected redemption: %d", got)
		}
	}

	// Spend everything down to exactly zero.
	if _, err := ledger.RedeemCredits("vibro-cafe", 760); err != nil {
		t.Fatalf("full redemption should succeed: %v", err)
	}
	if got := ledger.CarbonCredits(); got != 0 {
		t.Fatalf("expected 0 credits, got %d", got)
	}
}

func TestCreditAppendsLedgerEntry(t *testing.T) {
	ledger := newTestLedger()

	newBalance, tx := ledger.Credit(500, "Added to Wallet")
	if newBalance != 2950 {
		t.Fatalf("expected balance 2950, got %v", newBalance)
	}
	if tx.Kind != models.TransactionCredit {
		t.Fatalf("expected credit entry, got %s", tx.Kind)
	}

	snap := ledger.Snapshot()
	if snap.Balance != 2950 {
		t.Fatalf("snapshot balance mismatch: %v", snap.Balance)
	}
	if snap.Transactions[0].Title != "Added to Wallet" {
		t.Fatalf("expected top-up entry at head, got %q", snap.Transactions[0].Title)
	}
}

type fakeGateway struct {
	txID string
	err  error
}

func (g *fakeGateway) Charge(_ context.Context, _ float64, _ string) (string, error) {
	return g.txID, g.err
}

func TestAddFundsSuccess(t *testing.T) {
	ledger := newTestLedger()
	service := NewService(ledger, &fakeGateway{txID: "pay-1"}, zap.NewNop())

	result, err := service.AddFunds(context.Background(), 1000, "upi")
	if err != nil {
		t.Fatalf("add funds: %v", err)
	}
	if result.NewBalance != 3450 {
		t.Fatalf("expected new balance 3450, got %v", result.NewBalance)
	}
	if result.TransactionID != "pay-1" {
		t.Fatalf("expected provider tx id, got %q", result.TransactionID)
	}
	if got := len(ledger.Snapshot().Transactions); got != 5 {
		t.Fatalf("expected ledger entry for top-up, got %d transactions", got)
	}
}

func TestAddFundsDeclinedLeavesStateUnchanged(t *testing.T) {
	ledger := newTestLedger()
	service := NewService(ledger, &fakeGateway{err: ErrPaymentFailed}, zap.NewNop())

	_, err := service.AddFunds(context.Background(), 1000, "upi")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}

	snap := ledger.Snapshot()
	if snap.Balance != 2450 {
		t.Fatalf("declined charge must not change balance, got %v", snap.Balance)
	}
	if len(snap.Transactions) != 4 {
		t.Fatalf("declined charge must not append transactions, got %d", len(snap.Transactions))
	}
}

func TestAddFundsAmountBounds(t *testing.T) {
	ledger := newTestLedger()
	service := NewService(ledger, &fakeGateway{txID: "pay-1"}, zap.NewNop())

	for _, amount := range []float64{0, 99, 10001} {
		_, err := service.AddFunds(context.Background(), amount, "upi")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v should be rejected, got %v", amount, err)
		}
	}

	if got := ledger.Snapshot().Balance; got != 2450 {
		t.Fatalf("rejected amounts must not change balance, got %v", got)
	}
}
