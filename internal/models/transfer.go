package models

import "github.com/shopspring/decimal"

// Transfer represents an intent to move money between two accounts.
// It is transient and never persisted.
type Transfer struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
}

// AccountUpdate is one entry of a paired ledger batch: a signed delta
// to apply to the balance of one account.
type AccountUpdate struct {
	AccountID string
	Delta     decimal.Decimal
}
