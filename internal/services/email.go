package services

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"formintake/internal/config"
)

// Mailer delivers composed messages. *gomail.Dialer satisfies it.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService handles sending emails
type EmailService struct {
	cfg    *config.EmailConfig
	mailer Mailer
	log    *zap.SugaredLogger
}

// NewEmailService creates an email service that sends over SMTP with the
// configured account.
func NewEmailService(cfg *config.EmailConfig, log *zap.SugaredLogger) *EmailService {
	log.Infow("Initializing mail sender", "host", cfg.SMTPHost, "port", cfg.SMTPPort, "user", cfg.Username, "enabled", cfg.Enabled)
	return NewEmailServiceWithMailer(cfg, gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password), log)
}

// NewEmailServiceWithMailer creates an email service over an arbitrary mailer.
func NewEmailServiceWithMailer(cfg *config.EmailConfig, mailer Mailer, log *zap.SugaredLogger) *EmailService {
	return &EmailService{cfg: cfg, mailer: mailer, log: log}
}

// SendHTMLEmail sends an HTML email from the configured sender to the
// configured recipient.
func (s *EmailService) SendHTMLEmail(subject, htmlBody string) error {
	if !s.cfg.Enabled {
		s.log.Infow("Email disabled, not sending", "to", s.cfg.ToEmail, "subject", subject)
		return nil
	}

	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" || s.cfg.ToEmail == "" {
		return fmt.Errorf("email service not properly configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.FromEmail)
	msg.SetHeader("To", s.cfg.ToEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := s.mailer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsEnabled returns whether email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}
