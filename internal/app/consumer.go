package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nupo-consult/internal/events"
	"nupo-consult/internal/messaging/kafka/consumer"
	"nupo-consult/internal/notification"
	"nupo-consult/internal/shared/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer mails the company inbox for every submitted inquiry.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if !cfg.Kafka.Enabled() {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	mailer := notification.NewSMTPMailer(cfg.Mail, logger)
	notifier := notification.NewInquiryNotifier(mailer, cfg.Mail.NotifyTo, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.InquirySubmittedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeInquirySubmitted(ctx, reader, notifier, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
