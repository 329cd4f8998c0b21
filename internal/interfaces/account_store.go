package interfaces

import (
	"context"

	"github.com/altpay/account-transfer-service/internal/models"
)

// AccountStore is the backing store for account balances. Implementations
// must support concurrent use: CreateAccount is insert-if-absent with
// at-most-one winner, and UpdateAccounts applies a whole batch atomically
// with respect to concurrent readers and updaters.
//
// The store performs raw arithmetic only. Balance preconditions (such as
// non-negativity) are the caller's responsibility.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) error
	GetAccount(ctx context.Context, accountID string) (models.Account, error)

	// UpdateAccounts adds each entry's delta to the matching account's
	// balance. Entries whose account id does not exist are skipped.
	UpdateAccounts(ctx context.Context, updates []models.AccountUpdate) error
}
