package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"showcase/config"
	"showcase/internal/domain/service"
	"showcase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)

	return d.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ContactReceivedEvent {
	return &service.ContactReceivedEvent{
		ContactID:  "c-1",
		Name:       "Sara",
		Email:      "sara@example.com",
		Phone:      "+966 500",
		Message:    "Please send a quote.",
		ReceivedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestSMTPMailer_SendContactNotification(t *testing.T) {
	d := &recordingDialer{}
	m := newSMTPMailer(d, "noreply@speedsafe.com", []string{"info@speedsafe.com", "sales@speedsafe.com"}, discardLogger())

	require.NoError(t, m.SendContactNotification(context.Background(), testEvent()))
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"noreply@speedsafe.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"info@speedsafe.com", "sales@speedsafe.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"New contact message from Sara"}, msg.GetHeader("Subject"))
	assert.Len(t, msg.GetHeader("Reply-To"), 1)

	var body bytes.Buffer
	_, err := msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Please send a quote.")
}

func TestSMTPMailer_DialFailure(t *testing.T) {
	d := &recordingDialer{err: errors.New("connection refused")}
	m := newSMTPMailer(d, "noreply@speedsafe.com", []string{"info@speedsafe.com"}, discardLogger())

	err := m.SendContactNotification(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	d := &recordingDialer{}
	m := newSMTPMailer(d, "a@b.c", []string{"d@e.f"}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.SendContactNotification(ctx, testEvent()), context.Canceled)
	assert.Empty(t, d.sent)
}

func TestFormatContactBody(t *testing.T) {
	body := FormatContactBody(testEvent())

	assert.Contains(t, body, "Name: Sara\n")
	assert.Contains(t, body, "Email: sara@example.com\n")
	assert.Contains(t, body, "Phone: +966 500\n")
	assert.Contains(t, body, "Received: 2024-05-01 10:30 UTC\n")
	assert.Contains(t, body, "\nPlease send a quote.\n")
}

func TestNew(t *testing.T) {
	t.Run("log only without host", func(t *testing.T) {
		m, err := New(&config.Config{}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &logMailer{}, m)
		assert.NoError(t, m.SendContactNotification(context.Background(), testEvent()))
	})

	t.Run("recipients required with host", func(t *testing.T) {
		_, err := New(&config.Config{Mail: &config.MailConfig{Host: "smtp.example.com", Port: 587}}, discardLogger())
		assert.Error(t, err)
	})

	t.Run("smtp with host", func(t *testing.T) {
		m, err := New(&config.Config{Mail: &config.MailConfig{
			Host: "smtp.example.com",
			Port: 587,
			From: "noreply@speedsafe.com",
			To:   []string{"info@speedsafe.com"},
		}}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &smtpMailer{}, m)
	})
}
