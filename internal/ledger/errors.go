package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrSameAccountTransfer is returned for a transfer whose source and
// destination are the same account.
var ErrSameAccountTransfer = errors.New("transfer between the same account is not allowed")

// ErrNonPositiveAmount is returned for a transfer amount of zero or less.
var ErrNonPositiveAmount = errors.New("transfer amount must be positive")

// DuplicateAccountError is returned when creating an account whose id
// already exists.
type DuplicateAccountError struct {
	AccountID string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %s already exists", e.AccountID)
}

// AccountNotFoundError is returned when an account id does not resolve.
type AccountNotFoundError struct {
	AccountID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.AccountID)
}

// InsufficientFundsError is returned when the source account's balance
// cannot cover the transfer amount.
type InsufficientFundsError struct {
	AccountID string
	Balance   decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance in account %s: balance=%s", e.AccountID, e.Balance)
}
