// Package mailer sends transactional email. Delivery failures are the
// caller's problem to log, never to surface to the end user.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/techdayconf/techday-backend/internal/config"
	"golang.org/x/exp/slog"
)

// Mailer represents an outbound email sender
type Mailer interface {
	SendRegistrationConfirmation(ctx context.Context, to, firstName, ticketCode string) error
}

// MailgunMailer sends email through the Mailgun API
type MailgunMailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

// NoopMailer is used when email is not configured; it logs and drops.
type NoopMailer struct{}

// NewMailer creates the configured Mailer, falling back to NoopMailer when
// email is disabled or credentials are missing.
func NewMailer(cfg *config.Config) Mailer {
	if !cfg.Mail.Enabled || cfg.Mail.Domain == "" || cfg.Mail.APIKey == "" {
		slog.Info("Outbound email disabled; confirmation emails will be dropped")
		return &NoopMailer{}
	}
	return &MailgunMailer{
		mg:     mailgun.NewMailgun(cfg.Mail.Domain, cfg.Mail.APIKey),
		sender: cfg.Mail.Sender,
	}
}

// SendRegistrationConfirmation sends the ticket confirmation email
func (m *MailgunMailer) SendRegistrationConfirmation(ctx context.Context, to, firstName, ticketCode string) error {
	subject := "Your Tech Day ticket"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou're registered for Tech Day. Your ticket code is %s.\n\nKeep this email; you'll need the code at check-in.\n\nSee you there!\nThe Tech Day team\n",
		firstName, ticketCode,
	)
	msg := m.mg.NewMessage(m.sender, subject, body, to)

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, _, err := m.mg.Send(sendCtx, msg)
	return err
}

// SendRegistrationConfirmation drops the message.
func (m *NoopMailer) SendRegistrationConfirmation(ctx context.Context, to, firstName, ticketCode string) error {
	slog.Info("Dropping confirmation email (mailer disabled)", "to", to, "ticket", ticketCode)
	return nil
}
