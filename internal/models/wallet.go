package models

// TransactionKind signs a wallet transaction amount.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// Transaction is one append-only wallet ledger entry.
type Transaction struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Date   string          `json:"date"`
	Amount float64         `json:"amount"`
	Kind   TransactionKind `json:"type"`
}

// Card is a registered payment card.
type Card struct {
	ID        string `json:"id"`
	Last4     string `json:"last4"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

// Partner is a merchant accepting carbon credit redemption.
type Partner struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	MinCredits int    `json:"minCredits"`
}
