package interfaces

import (
	"context"

	"github.com/altpay/account-transfer-service/internal/models"
)

// Notifier delivers post-commit transfer notifications. Delivery is
// best-effort: implementations report failures through their own logging,
// never back to the caller, because a committed transfer is final.
type Notifier interface {
	Notify(ctx context.Context, notification models.TransferNotification)
}
