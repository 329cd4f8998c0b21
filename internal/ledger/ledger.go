package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/models"
)

// Ledger coordinates account creation and money transfers over an
// AccountStore. It owns one exclusive lock per account id; every transfer
// acquires the locks of both accounts it touches in lexicographic id order,
// so transfers over overlapping accounts serialize while transfers over
// disjoint accounts run in parallel.
type Ledger struct {
	store    interfaces.AccountStore
	notifier interfaces.Notifier
	log      *zap.Logger

	locksMu sync.Mutex             // protects locks
	locks   map[string]*sync.Mutex // one exclusive lock per account id
}

// NewLedger creates a Ledger over the given store and notifier.
func NewLedger(store interfaces.AccountStore, notifier interfaces.Notifier, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		store:    store,
		notifier: notifier,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
	}
}

// CreateAccount inserts a new account. Returns *DuplicateAccountError if the
// id is already taken; concurrent creates of the same id have exactly one
// winner.
func (l *Ledger) CreateAccount(ctx context.Context, account models.Account) error {
	if err := l.store.CreateAccount(ctx, account); err != nil {
		return err
	}
	l.log.Info("account created",
		zap.String("account_id", account.ID),
		zap.String("balance", account.Balance.String()),
	)
	return nil
}

// GetAccount returns a snapshot of one account, or *AccountNotFoundError.
func (l *Ledger) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	return l.store.GetAccount(ctx, accountID)
}

// Transfer moves amount from one account to another. Validation runs under
// both account locks, so the decision is made against balances no concurrent
// transfer can change. On success both parties are notified after the locks
// are released; notification failures never revert the commit.
//
// Lock acquisition has no timeout. Deadlock cannot occur because every
// transfer acquires account locks in the same lexicographic order.
func (l *Ledger) Transfer(ctx context.Context, transfer models.Transfer) error {
	if transfer.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	from, to, err := l.commit(ctx, transfer)
	if err != nil {
		return err
	}

	l.notifyParties(ctx, transfer, from, to)
	return nil
}

// commit performs the locked portion of a transfer: snapshot, validate,
// apply the paired batch. It returns post-commit snapshots of both accounts
// for notification.
func (l *Ledger) commit(ctx context.Context, transfer models.Transfer) (models.Account, models.Account, error) {
	var none models.Account

	first, second := transfer.FromAccount, transfer.ToAccount
	if second < first {
		first, second = second, first
	}

	firstMu := l.accountLock(first)
	firstMu.Lock()
	defer firstMu.Unlock()

	// A self-transfer maps to a single lock; sync.Mutex is not reentrant,
	// so it is acquired once and validation reports the error under it.
	if first != second {
		secondMu := l.accountLock(second)
		secondMu.Lock()
		defer secondMu.Unlock()
	}

	from, err := l.snapshot(ctx, transfer.FromAccount)
	if err != nil {
		return none, none, err
	}
	to, err := l.snapshot(ctx, transfer.ToAccount)
	if err != nil {
		return none, none, err
	}

	if err := ValidateTransfer(transfer.FromAccount, transfer.ToAccount, from, to, transfer.Amount); err != nil {
		return none, none, err
	}

	updates := []models.AccountUpdate{
		{AccountID: transfer.FromAccount, Delta: transfer.Amount.Neg()},
		{AccountID: transfer.ToAccount, Delta: transfer.Amount},
	}
	if err := l.store.UpdateAccounts(ctx, updates); err != nil {
		return none, none, err
	}

	// Post-commit balances follow from the validated snapshots; both locks
	// are still held, so no concurrent transfer can have interleaved.
	fromAfter := models.Account{ID: from.ID, Balance: from.Balance.Sub(transfer.Amount)}
	toAfter := models.Account{ID: to.ID, Balance: to.Balance.Add(transfer.Amount)}
	return fromAfter, toAfter, nil
}

// snapshot reads one account, mapping not-found to a nil snapshot for the
// validator and passing any other store error through.
func (l *Ledger) snapshot(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		var notFound *AccountNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (l *Ledger) notifyParties(ctx context.Context, transfer models.Transfer, from, to models.Account) {
	transferID := uuid.NewString()
	now := time.Now().UTC()

	l.notifier.Notify(ctx, models.TransferNotification{
		TransferID: transferID,
		AccountID:  from.ID,
		Balance:    from.Balance,
		Message:    fmt.Sprintf("Transferred %s to account %s.", transfer.Amount, to.ID),
		OccurredAt: now,
	})
	l.notifier.Notify(ctx, models.TransferNotification{
		TransferID: transferID,
		AccountID:  to.ID,
		Balance:    to.Balance,
		Message:    fmt.Sprintf("Received %s from account %s.", transfer.Amount, from.ID),
		OccurredAt: now,
	})

	l.log.Info("transfer committed",
		zap.String("transfer_id", transferID),
		zap.String("from_account", from.ID),
		zap.String("to_account", to.ID),
		zap.String("amount", transfer.Amount.String()),
	)
}

// accountLock returns the lock for an account id, creating it on first use.
func (l *Ledger) accountLock(accountID string) *sync.Mutex {
	l.locksMu.Lock()
	defer l.locksMu.Unlock()

	mu, ok := l.locks[accountID]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[accountID] = mu
	}
	return mu
}
