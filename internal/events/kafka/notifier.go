package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/models"
)

// Notifier publishes transfer notifications to a Kafka topic. Delivery is
// best-effort: write errors are logged and swallowed, since the transfer is
// already committed by the time a notification is produced.
type Notifier struct {
	writer *kafka.Writer
	log    *zap.Logger
}

// NewNotifier creates a Notifier writing to the given brokers and topic.
func NewNotifier(brokers []string, topic string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		log: log,
	}
}

func (n *Notifier) Notify(ctx context.Context, notification models.TransferNotification) {
	data, err := json.Marshal(notification)
	if err != nil {
		n.log.Error("encoding transfer notification failed",
			zap.String("transfer_id", notification.TransferID),
			zap.Error(err),
		)
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.AccountID),
		Value: data,
	})
	if err != nil {
		n.log.Error("transfer notification delivery failed",
			zap.String("transfer_id", notification.TransferID),
			zap.String("account_id", notification.AccountID),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}

var _ interfaces.Notifier = (*Notifier)(nil)
