package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altpay/account-transfer-service/internal/ledger"
	"github.com/altpay/account-transfer-service/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateAndGetAccount(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("50000")}))

	account, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.True(t, account.Balance.Equal(dec("50000")))
}

func TestCreateAccount_Duplicate(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("10")}))
	err := s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("20")})

	var duplicate *ledger.DuplicateAccountError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "acc-1", duplicate.AccountID)

	account, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("10")))
}

func TestGetAccount_NotFound(t *testing.T) {
	s := New()

	_, err := s.GetAccount(context.Background(), "acc-missing")

	var notFound *ledger.AccountNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "acc-missing", notFound.AccountID)
}

func TestUpdateAccounts_AppliesWholeBatch(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("0")}))
	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-2", Balance: dec("500.00")}))

	err := s.UpdateAccounts(ctx, []models.AccountUpdate{
		{AccountID: "acc-1", Delta: dec("100")},
		{AccountID: "acc-2", Delta: dec("-100")},
	})
	require.NoError(t, err)

	acc1, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, acc1.Balance.Equal(dec("100")))

	acc2, err := s.GetAccount(ctx, "acc-2")
	require.NoError(t, err)
	assert.True(t, acc2.Balance.Equal(dec("400.00")))
}

func TestUpdateAccounts_SkipsMissingIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("10")}))

	err := s.UpdateAccounts(ctx, []models.AccountUpdate{
		{AccountID: "acc-missing", Delta: dec("-5")},
		{AccountID: "acc-1", Delta: dec("5")},
	})
	require.NoError(t, err)

	account, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("15")))

	_, err = s.GetAccount(ctx, "acc-missing")
	var notFound *ledger.AccountNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

// The store does no balance policing; deltas below zero are applied as-is.
func TestUpdateAccounts_RawArithmetic(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, models.Account{ID: "acc-1", Balance: dec("1")}))
	require.NoError(t, s.UpdateAccounts(ctx, []models.AccountUpdate{
		{AccountID: "acc-1", Delta: dec("-2")},
	}))

	account, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(dec("-1")))
}

func TestCreateAccount_ConcurrentSingleWinner(t *testing.T) {
	s := New()

	const attempts = 64
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateAccount(context.Background(), models.Account{ID: "acc-1", Balance: dec("1")})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var duplicate *ledger.DuplicateAccountError
		assert.ErrorAs(t, err, &duplicate)
	}
	assert.Equal(t, 1, winners)
}
