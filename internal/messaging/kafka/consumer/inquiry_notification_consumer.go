package consumer

import (
	"context"
	"encoding/json"

	"nupo-consult/internal/events"
	"nupo-consult/internal/notification"

	"go.uber.org/zap"
)

// ConsumeInquirySubmitted mails every submitted inquiry. A message whose
// notification fails stays uncommitted so it is redelivered after a restart.
func ConsumeInquirySubmitted(
	ctx context.Context,
	reader MessageReader,
	notifier notification.InquiryNotifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.inquiry_submitted")
	log.Info("inquiry notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("inquiry notification consumer stopped")
				return
			}
			log.Error("fetch inquiry message failed", zap.Error(err))
			continue
		}

		var event events.InquirySubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode inquiry_submitted event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifier.NotifyInquiry(ctx, event); err != nil {
			log.Error("send inquiry notification failed",
				zap.String("inquiry_id", event.InquiryID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit inquiry message failed", zap.Error(err))
			continue
		}

		log.Info("inquiry notification delivered",
			zap.String("inquiry_id", event.InquiryID),
			zap.String("request_id", event.RequestID),
		)
	}
}
