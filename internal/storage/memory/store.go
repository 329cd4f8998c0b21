package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/ledger"
	"github.com/altpay/account-transfer-service/internal/models"
)

// Store is an in-memory implementation of interfaces.AccountStore backed by
// a mutex-guarded map. A whole update batch is applied under one critical
// section, so readers observe either all of a batch's deltas or none.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]decimal.Decimal
}

// New creates an empty in-memory account store.
func New() *Store {
	return &Store{
		accounts: make(map[string]decimal.Decimal),
	}
}

// CreateAccount inserts the account if its id is absent. With concurrent
// creates of the same id exactly one caller wins; the rest get
// *ledger.DuplicateAccountError.
func (s *Store) CreateAccount(_ context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return &ledger.DuplicateAccountError{AccountID: account.ID}
	}
	s.accounts[account.ID] = account.Balance
	return nil
}

// GetAccount returns a snapshot of one account.
func (s *Store) GetAccount(_ context.Context, accountID string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, ok := s.accounts[accountID]
	if !ok {
		return models.Account{}, &ledger.AccountNotFoundError{AccountID: accountID}
	}
	return models.Account{ID: accountID, Balance: balance}, nil
}

// UpdateAccounts adds each delta to the matching account's balance. Entries
// whose id is not present are skipped. Raw arithmetic only; the caller is
// responsible for balance preconditions.
func (s *Store) UpdateAccounts(_ context.Context, updates []models.AccountUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, update := range updates {
		balance, ok := s.accounts[update.AccountID]
		if !ok {
			continue
		}
		s.accounts[update.AccountID] = balance.Add(update.Delta)
	}
	return nil
}

var _ interfaces.AccountStore = (*Store)(nil)
