// Package mailer sends the registration confirmation email over SMTP.
// Delivery is best effort: the orchestrator logs failures and never blocks
// registration on them.
package mailer

import (
	"context"
	"fmt"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	mail "github.com/go-mail/mail"
)

type SMTPMailer struct {
	dialer      *mail.Dialer
	from        string
	frontendURL string
}

func NewSMTPMailer(host string, port int, username, password, from, frontendURL string) *SMTPMailer {
	return &SMTPMailer{
		dialer:      mail.NewDialer(host, port, username, password),
		from:        from,
		frontendURL: frontendURL,
	}
}

func (m *SMTPMailer) SendConfirmationEmail(_ context.Context, account *domain.Account) error {
	confirmationURL := fmt.Sprintf("%s/api/users/confirm?id=%s", m.frontendURL, account.ID)

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", account.Email, account.Name+" "+account.LastName)
	msg.SetHeader("Subject", "Confirm your email - KidsTube")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Thank you for registering. Please confirm your email by clicking the link below:</p>
<p><a href="%s">Confirm Email</a></p>`, confirmationURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: sending confirmation email: %w", err)
	}
	return nil
}
