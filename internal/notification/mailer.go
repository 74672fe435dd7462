package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"nupo-consult/internal/shared/config"

	"go.uber.org/zap"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg    config.MailConfig
	send   sendFunc
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logger ...*zap.Logger) *SMTPMailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, logger: l}
}

// Send delivers a plain text message. With mail disabled it only logs.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail has no recipients")
	}

	if !m.cfg.Enabled {
		m.logger.Info("mail disabled, skipping send",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return nil
	}

	if m.cfg.SMTPHost == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	if err := m.send(addr, auth, m.cfg.FromEmail, msg.To, m.build(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("mail sent", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) build(msg Message) []byte {
	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// sanitizeHeader strips line breaks so user input cannot inject headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
