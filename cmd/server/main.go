package main

import (
	"database/sql"
	"net/http"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/altpay/account-transfer-service/internal/api"
	"github.com/altpay/account-transfer-service/internal/config"
	kafkanotifier "github.com/altpay/account-transfer-service/internal/events/kafka"
	"github.com/altpay/account-transfer-service/internal/events/lognotifier"
	"github.com/altpay/account-transfer-service/internal/interfaces"
	"github.com/altpay/account-transfer-service/internal/ledger"
	"github.com/altpay/account-transfer-service/internal/storage/memory"
	"github.com/altpay/account-transfer-service/internal/storage/postgres"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration failed", zap.Error(err))
	}

	var store interfaces.AccountStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("opening postgres failed", zap.Error(err))
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("pinging postgres failed", zap.Error(err))
		}
		defer db.Close()
		store = postgres.New(db)
	default:
		store = memory.New()
	}

	var notifier interfaces.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kn := kafkanotifier.NewNotifier(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kn.Close()
		notifier = kn
	} else {
		notifier = lognotifier.New(logger)
	}

	ledgerService := ledger.NewLedger(store, notifier, logger)
	handler := api.NewHandler(ledgerService, logger)

	logger.Info("starting server",
		zap.String("addr", cfg.ListenAddr),
		zap.String("store_backend", cfg.StoreBackend),
		zap.Int("kafka_brokers", len(cfg.KafkaBrokers)),
	)
	if err := http.ListenAndServe(cfg.ListenAddr, handler.Routes()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
