package wallet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

var (
	// ErrPartnerNotFound is returned when redeeming against an unknown partner.
	ErrPartnerNotFound = errors.New("wallet: partner not found")
	// ErrBelowMinimum is returned when the redemption is under the partner threshold.
	ErrBelowMinimum = errors.New("wallet: below partner minimum")
	// ErrInsufficientCredits is returned when the redemption exceeds the credit balance.
	ErrInsufficientCredits = errors.New("wallet: insufficient credits")
	// ErrInvalidAmount is returned when a top-up amount is outside the allowed range.
	ErrInvalidAmount = errors.New("wallet: amount must be between 100 and 10000")
)

const (
	minTopUp = 100
	maxTopUp = 10000
)

// Ledger owns wallet state: balance, the append-only transaction list
// (newest first), carbon credits, cards and redemption partners. All
// mutation happens under one mutex, so every balance change lands together
// with its ledger entry. Carbon credits never go negative; validation runs
// before any state is touched.
type Ledger struct {
	mu           sync.RWMutex
	balance      float64
	loyalty      int
	credits      int
	transactions []models.Transaction
	cards        []models.Card
	partners     []models.Partner

	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewLedger returns a ledger seeded with the demo wallet.
func NewLedger(logger *zap.Logger) *Ledger {
	return &Ledger{
		balance:      2450,
		loyalty:      1250,
		credits:      760,
		transactions: seedTransactions(),
		cards:        seedCards(),
		partners:     seedPartners(),
		logger:       logger,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
}

// Snapshot is a read-only view of wallet state.
type Snapshot struct {
	Balance       float64              `json:"balance"`
	LoyaltyPoints int                  `json:"loyaltyPoints"`
	CarbonCredits int                  `json:"carbonCredits"`
	Transactions  []models.Transaction `json:"transactions"`
	Cards         []models.Card        `json:"cards"`
	Partners      []models.Partner     `json:"partners"`
}

// Snapshot returns a copy of the current wallet state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	txs := make([]models.Transaction, len(l.transactions))
	copy(txs, l.transactions)
	cards := make([]models.Card, len(l.cards))
	copy(cards, l.cards)
	partners := make([]models.Partner, len(l.partners))
	copy(partners, l.partners)

	return Snapshot{
		Balance:       l.balance,
		LoyaltyPoints: l.loyalty,
		CarbonCredits: l.credits,
		Transactions:  txs,
		Cards:         cards,
		Partners:      partners,
	}
}

// CarbonCredits returns the current credit balance.
func (l *Ledger) CarbonCredits() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.credits
}

// RedeemCredits spends carbon credits at a partner. All checks run before
// any mutation; a failed redemption leaves the ledger untouched.
func (l *Ledger) RedeemCredits(partnerID string, credits int) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	partner, ok := l.findPartner(partnerID)
	if !ok {
		return models.Transaction{}, ErrPartnerNotFound
	}
	if credits < partner.MinCredits {
		return models.Transaction{}, fmt.Errorf("%w: minimum %d credits required", ErrBelowMinimum, partner.MinCredits)
	}
	if credits > l.credits {
		return models.Transaction{}, ErrInsufficientCredits
	}

	l.credits -= credits
	tx := models.Transaction{
		ID:     l.newID(),
		Title:  fmt.Sprintf("Carbon Credit Redemption – %s", partner.Name),
		Date:   l.now().Format("Jan 2, 2006"),
		Amount: float64(credits),
		Kind:   models.TransactionDebit,
	}
	l.transactions = append([]models.Transaction{tx}, l.transactions...)

	l.logger.Info("credits redeemed",
		zap.String("partner_id", partner.ID),
		zap.Int("credits", credits),
		zap.Int("remaining", l.credits),
	)
	return tx, nil
}

// Credit records a confirmed top-up: balance up, matching credit entry
// prepended. Amount bounds are checked by the caller before charging the
// payment gateway.
func (l *Ledger) Credit(amount float64, title string) (float64, models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance += amount
	tx := models.Transaction{
		ID:     l.newID(),
		Title:  title,
		Date:   l.now().Format("Jan 2, 2006"),
		Amount: amount,
		Kind:   models.TransactionCredit,
	}
	l.transactions = append([]models.Transaction{tx}, l.transactions...)
	return l.balance, tx
}

// ValidateTopUp checks top-up bounds without touching state.
func ValidateTopUp(amount float64) error {
	if amount < minTopUp || amount > maxTopUp {
		return ErrInvalidAmount
	}
	return nil
}

func (l *Ledger) findPartner(id string) (models.Partner, bool) {
	for _, p := range l.partners {
		if p.ID == id {
			return p, true
		}
	}
	return models.Partner{}, false
}

func seedTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "1", Title: "Added to Wallet", Date: "Dec 16, 2024", Amount: 1000, Kind: models.TransactionCredit},
		{ID: "2", Title: "Charging Session", Date: "Dec 15, 2024", Amount: 678, Kind: models.TransactionDebit},
		{ID: "3", Title: "Referral Bonus", Date: "Dec 14, 2024", Amount: 200, Kind: models.TransactionCredit},
		{ID: "4", Title: "Charging Session", Date: "Dec 14, 2024", Amount: 492, Kind: models.TransactionDebit},
	}
}

func seedCards() []models.Card {
	return []models.Card{
		{ID: "1", Last4: "4242", Type: "Visa", IsDefault: true},
		{ID: "2", Last4: "5555", Type: "Mastercard", IsDefault: false},
	}
}

func seedPartners() []models.Partner {
	return []models.Partner{
		{ID: "vibro-cafe", Name: "Vibro Cafe", Category: "Cafe", MinCredits: 100},
		{ID: "swiggy", Name: "Swiggy", Category: "Food", MinCredits: 150},
		{ID: "zomato", Name: "Zomato", Category: "Food", MinCredits: 150},
		{ID: "bookmyshow", Name: "BookMyShow", Category: "Movies", MinCredits: 200},
		{ID: "district", Name: "District", Category: "Other", MinCredits: 120},
	}
}
