package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altpay/account-transfer-service/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func account(id, balance string) *models.Account {
	return &models.Account{ID: id, Balance: dec(balance)}
}

func TestValidateTransfer_FromAccountNotFound(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-2", nil, account("acc-2", "0"), dec("100.00"))

	var notFound *AccountNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "acc-1", notFound.AccountID)
}

func TestValidateTransfer_ToAccountNotFound(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-2", account("acc-1", "50.00"), nil, dec("100.00"))

	var notFound *AccountNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "acc-2", notFound.AccountID)
}

func TestValidateTransfer_SameAccount(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-1", account("acc-1", "20.00"), account("acc-1", "20.00"), dec("2.00"))
	assert.ErrorIs(t, err, ErrSameAccountTransfer)
}

// Existence is checked before self-transfer: a self-transfer naming a
// missing account reports not-found.
func TestValidateTransfer_MissingSelfTransferReportsNotFound(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-1", nil, nil, dec("2.00"))

	var notFound *AccountNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "acc-1", notFound.AccountID)
}

func TestValidateTransfer_InsufficientFunds(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-2", account("acc-1", "1.99"), account("acc-2", "0"), dec("2.00"))

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "acc-1", insufficient.AccountID)
	assert.True(t, insufficient.Balance.Equal(dec("1.99")))
}

func TestValidateTransfer_ExactBalanceAllowed(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-2", account("acc-1", "2.00"), account("acc-2", "0"), dec("2.00"))
	assert.NoError(t, err)
}

func TestValidateTransfer_Valid(t *testing.T) {
	err := ValidateTransfer("acc-1", "acc-2", account("acc-1", "20.00"), account("acc-2", "0"), dec("2.00"))
	assert.NoError(t, err)
}
