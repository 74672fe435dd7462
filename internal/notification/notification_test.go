package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"nupo-consult/internal/events"
	"nupo-consult/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type captured struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(enabled bool, sendErr error) (*SMTPMailer, *captured) {
	got := &captured{}
	m := NewSMTPMailer(config.MailConfig{
		Enabled:   enabled,
		SMTPHost:  "smtp.example.test",
		SMTPPort:  587,
		Username:  "user",
		Password:  "pass",
		FromEmail: "noreply@nupoconsult.com",
		FromName:  "NUPO Consult Website",
	}, zap.NewNop())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		got.addr, got.from, got.to, got.msg = addr, from, to, string(msg)
		return sendErr
	}
	return m, got
}

func TestSMTPMailer_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("builds headers and body", func(t *testing.T) {
		m, got := newTestMailer(true, nil)

		err := m.Send(ctx, Message{To: []string{"info@nupoconsult.com"}, Subject: "Hi\r\nBcc: evil@x", Body: "line1\nline2"})

		assert.NoError(t, err)
		assert.Equal(t, "smtp.example.test:587", got.addr)
		assert.Equal(t, []string{"info@nupoconsult.com"}, got.to)
		assert.Contains(t, got.msg, "From: NUPO Consult Website <noreply@nupoconsult.com>\r\n")
		assert.Contains(t, got.msg, "Subject: Hi  Bcc: evil@x\r\n")
		assert.Contains(t, got.msg, "line1\r\nline2")
	})

	t.Run("disabled does not send", func(t *testing.T) {
		m, got := newTestMailer(false, nil)

		assert.NoError(t, m.Send(ctx, Message{To: []string{"a@b.c"}, Subject: "s"}))
		assert.Empty(t, got.addr)
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		m, _ := newTestMailer(true, errors.New("421 busy"))

		err := m.Send(ctx, Message{To: []string{"a@b.c"}, Subject: "s"})
		assert.ErrorContains(t, err, "421 busy")
	})

	t.Run("no recipients", func(t *testing.T) {
		m, _ := newTestMailer(true, nil)
		assert.Error(t, m.Send(ctx, Message{Subject: "s"}))
	})
}

type recordingMailer struct {
	msgs []Message
	err  error
}

func (r *recordingMailer) Send(ctx context.Context, msg Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestInquiryNotifier(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewInquiryNotifier(mailer, "info@nupoconsult.com", zap.NewNop())

	err := n.NotifyInquiry(context.Background(), events.InquirySubmittedEvent{
		InquiryID:   "inq-1",
		Name:        "Ada",
		Email:       "ada@example.com",
		InquiryType: "quote",
		Subject:     "Bridge design",
		Message:     "We need a quote.",
		Services:    []string{"Structural Design"},
	})

	assert.NoError(t, err)
	assert.Len(t, mailer.msgs, 1)
	msg := mailer.msgs[0]
	assert.Equal(t, []string{"info@nupoconsult.com"}, msg.To)
	assert.Equal(t, "New Contact Message: Bridge design", msg.Subject)
	assert.True(t, strings.HasPrefix(msg.Body, "From: Ada (ada@example.com)\n"))
	assert.Contains(t, msg.Body, "Services: Structural Design")
	assert.Contains(t, msg.Body, "Message:\nWe need a quote.")
}
