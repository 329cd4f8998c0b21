package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/ledger"
	"github.com/altpay/account-transfer-service/internal/models"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// Store is a Postgres implementation of interfaces.AccountStore. It expects
// an accounts table:
//
//	CREATE TABLE accounts (
//	    id      TEXT PRIMARY KEY,
//	    balance NUMERIC NOT NULL
//	);
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, account models.Account) error {
	const query = `INSERT INTO accounts (id, balance) VALUES ($1, $2)`

	_, err := s.db.ExecContext(ctx, query, account.ID, account.Balance)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return &ledger.DuplicateAccountError{AccountID: account.ID}
	}
	return err
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	const query = `SELECT balance FROM accounts WHERE id = $1`

	account := models.Account{ID: accountID}
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(&account.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, &ledger.AccountNotFoundError{AccountID: accountID}
	}
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// UpdateAccounts applies the whole batch in one SQL transaction. Entries
// whose id matches no row update nothing and are skipped.
func (s *Store) UpdateAccounts(ctx context.Context, updates []models.AccountUpdate) error {
	const query = `UPDATE accounts SET balance = balance + $2 WHERE id = $1`

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	for _, update := range updates {
		if _, err = dbTx.ExecContext(ctx, query, update.AccountID, update.Delta); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

var _ interfaces.AccountStore = (*Store)(nil)
