package email

import (
	"fmt"
	"net/smtp"

	"beauty-parlour-api/internal/config"
)

type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	cfg *config.SMTP
}

func NewMailer(cfg *config.SMTP) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.FromAddr == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := []byte(fmt.Sprintf("From: %s <%s>\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n\r\n"+
		"%s",
		m.cfg.FromName, m.cfg.FromAddr, to, subject, body))

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.FromAddr, []string{to}, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
