package notification

import (
	"context"
	"fmt"
	"strings"

	"nupo-consult/internal/events"

	"go.uber.org/zap"
)

type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, event events.InquirySubmittedEvent) error
}

type inquiryNotifier struct {
	mailer Mailer
	to     string
	logger *zap.Logger
}

// NewInquiryNotifier mails each submitted inquiry to the company inbox.
func NewInquiryNotifier(mailer Mailer, to string, logger ...*zap.Logger) InquiryNotifier {
	l := zap.L().Named("notification.inquiry")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.inquiry")
	}
	return &inquiryNotifier{mailer: mailer, to: to, logger: l}
}

func (n *inquiryNotifier) NotifyInquiry(ctx context.Context, event events.InquirySubmittedEvent) error {
	err := n.mailer.Send(ctx, Message{
		To:      []string{n.to},
		Subject: fmt.Sprintf("New Contact Message: %s", event.Subject),
		Body:    inquiryBody(event),
	})
	if err != nil {
		return err
	}

	n.logger.Info("inquiry notification sent",
		zap.String("inquiry_id", event.InquiryID),
		zap.String("request_id", event.RequestID),
	)
	return nil
}

func inquiryBody(e events.InquirySubmittedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s (%s)\n", e.Name, e.Email)
	if e.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", e.Phone)
	}
	if e.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", e.Company)
	}
	fmt.Fprintf(&b, "Inquiry type: %s\n", e.InquiryType)
	if len(e.Services) > 0 {
		fmt.Fprintf(&b, "Services: %s\n", strings.Join(e.Services, ", "))
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", e.Message)
	return b.String()
}
