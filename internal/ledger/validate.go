package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/altpay/account-transfer-service/internal/models"
)

// ValidateTransfer checks the preconditions for moving amount from one
// account to another. A nil account means it was not found. The check order
// is fixed: existence of the source, existence of the destination,
// self-transfer, sufficient funds. When several conditions hold at once the
// earliest check decides which error is reported, so a self-transfer naming
// a missing account reports not-found, not same-account.
//
// ValidateTransfer is pure and acquires no locks; the caller is expected to
// pass snapshots taken under whatever exclusivity it needs.
func ValidateTransfer(fromID, toID string, from, to *models.Account, amount decimal.Decimal) error {
	if from == nil {
		return &AccountNotFoundError{AccountID: fromID}
	}
	if to == nil {
		return &AccountNotFoundError{AccountID: toID}
	}
	if fromID == toID {
		return ErrSameAccountTransfer
	}
	if from.Balance.Sub(amount).Sign() < 0 {
		return &InsufficientFundsError{AccountID: fromID, Balance: from.Balance}
	}
	return nil
}
