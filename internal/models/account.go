package models

import "github.com/shopspring/decimal"

// Account is a point-in-time snapshot of one account. The mutable record
// lives inside the store; everything outside works with copies.
type Account struct {
	ID      string          `json:"account_id"`
	Balance decimal.Decimal `json:"balance"`
}
