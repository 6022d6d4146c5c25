// Package mail notifies site operators by e-mail.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"showcase/config"
	"showcase/internal/domain/service"
	"showcase/internal/errors"

	"gopkg.in/gomail.v2"
)

const contactSubjectPrefix = "New contact message from "

// dialer is the part of gomail.Dialer the mailer needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer dialer
	from   string
	to     []string
	logger *slog.Logger
}

// New returns an SMTP mailer when mail.host is set, and a mailer that only
// logs the notification otherwise.
func New(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	if mc == nil || mc.Host == "" {
		logger.Info("SMTP not configured, contact notifications are logged only")

		return &logMailer{logger: logger}, nil
	}
	if mc.From == "" || len(mc.To) == 0 {
		return nil, errors.New("mail.from and mail.to are required when mail.host is set")
	}

	return newSMTPMailer(gomail.NewDialer(mc.Host, mc.Port, mc.Username, mc.Password), mc.From, mc.To, logger), nil
}

func newSMTPMailer(d dialer, from string, to []string, logger *slog.Logger) *smtpMailer {
	return &smtpMailer{dialer: d, from: from, to: to, logger: logger}
}

func (m *smtpMailer) SendContactNotification(ctx context.Context, event *service.ContactReceivedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	if event.Email != "" {
		msg.SetHeader("Reply-To", msg.FormatAddress(event.Email, event.Name))
	}
	msg.SetHeader("Subject", contactSubjectPrefix+event.Name)
	msg.SetBody("text/plain", FormatContactBody(event))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send contact notification")
	}

	m.logger.Info("Contact notification sent",
		slog.String("contact_id", event.ContactID),
		slog.Int("recipients", len(m.to)),
	)

	return nil
}

// FormatContactBody renders the plain-text notification body.
func FormatContactBody(event *service.ContactReceivedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", event.Name)
	fmt.Fprintf(&b, "Email: %s\n", event.Email)
	fmt.Fprintf(&b, "Phone: %s\n", event.Phone)
	if !event.ReceivedAt.IsZero() {
		fmt.Fprintf(&b, "Received: %s\n", event.ReceivedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("\n")
	b.WriteString(event.Message)
	b.WriteString("\n")

	return b.String()
}

type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendContactNotification(_ context.Context, event *service.ContactReceivedEvent) error {
	m.logger.Info("Contact notification (mail disabled)",
		slog.String("contact_id", event.ContactID),
		slog.String("from", event.Email),
	)

	return nil
}
