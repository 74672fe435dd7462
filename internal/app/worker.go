package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nupo-consult/internal/messaging/kafka"
	"nupo-consult/internal/messaging/kafka/producer"
	"nupo-consult/internal/shared/config"
	"nupo-consult/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains the outbox into Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if !cfg.Kafka.Enabled() {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Kafka.PollInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
