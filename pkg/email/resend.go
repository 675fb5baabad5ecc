package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/premium-backend/internal/config"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var ErrDisabled = errors.New("email delivery is not configured")

type EmailService struct {
	client    *resend.Client
	from      string
	fromName  string
	templates *template.Template
	logger    *zap.Logger
}

func NewEmailService(cfg *config.Config, log *zap.Logger) (*EmailService, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	s := &EmailService{
		from:      cfg.Email.FromAddress,
		fromName:  cfg.Email.FromName,
		templates: tmpl,
		logger:    log.Named("email"),
	}
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromAddress != "" {
		s.client = resend.NewClient(cfg.Email.ResendAPIKey)
	} else {
		s.logger.Warn("resend is not configured, emails will be skipped")
	}

	return s, nil
}

func (s *EmailService) SendPremiumWelcomeEmail(email, packageName string) error {
	if s.client == nil {
		return ErrDisabled
	}

	s.logger.Info("sending premium welcome email", zap.String("to", email))

	html, err := s.render("premium-welcome.html", map[string]interface{}{
		"Email":   email,
		"Package": packageName,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to Premium!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	s.logger.Info("sent premium welcome email", zap.String("to", email), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) render(name string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return body.String(), nil
}
