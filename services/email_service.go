// services/email_service.go
package services

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailService wraps a reusable SMTP dialer. Sends are best-effort: callers
// log failures and move on, they never fail the parent operation.
type EmailService struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewEmailService() *EmailService {
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	return &EmailService{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASSWORD"),
		),
		from:     os.Getenv("SMTP_FROM"),
		fromName: os.Getenv("SMTP_FROM_NAME"),
	}
}

// Configured reports whether SMTP settings are present; sends are skipped
// silently otherwise so local development works without a mail server.
func (s *EmailService) Configured() bool {
	return s.dialer.Host != "" && s.from != ""
}

func (s *EmailService) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	if s.fromName != "" {
		m.SetAddressHeader("From", s.from, s.fromName)
	} else {
		m.SetHeader("From", s.from)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
