package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferNotification is delivered to each party of a committed transfer.
// Both notifications of one transfer share the same TransferID.
type TransferNotification struct {
	TransferID string          `json:"transfer_id"`
	AccountID  string          `json:"account_id"`
	Balance    decimal.Decimal `json:"balance"`
	Message    string          `json:"message"`
	OccurredAt time.Time       `json:"occurred_at"`
}
