package notify

import (
	"fmt"

	"github.com/go-gomail/gomail"

	"mediconnect-server/internal/config"
)

// Mailer delivers out-of-band credential notifications.
type Mailer interface {
	SendPatientWelcome(email, tempPassword string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPatientWelcome mails the temporary credentials to a patient whose
// account was created during booking.
func (m *SMTPMailer) SendPatientWelcome(email, tempPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your Patient Account Credentials")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your patient account has been created.\nEmail: %s\nTemporary password: %s\n\nPlease log in and change your password immediately.",
		email, tempPassword,
	))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending welcome email: %w", err)
	}
	return nil
}
