// Package lognotifier provides a Notifier that writes notifications to the
// structured log. It is the default backend when no broker is configured.
package lognotifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/models"
)

type Notifier struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{log: log}
}

func (n *Notifier) Notify(_ context.Context, notification models.TransferNotification) {
	n.log.Info("transfer notification",
		zap.String("transfer_id", notification.TransferID),
		zap.String("account_id", notification.AccountID),
		zap.String("balance", notification.Balance.String()),
		zap.String("message", notification.Message),
	)
}

var _ interfaces.Notifier = (*Notifier)(nil)
