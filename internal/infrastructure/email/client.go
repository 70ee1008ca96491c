// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/Kronotime-SAS/Festina/internal/infrastructure/email/templates"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendNewsletterWelcome(toEmail string) error
}

// SendFunc delivers one prepared email.
type SendFunc func(params *resend.SendEmailRequest) error

// Config identifies the sender and the storefront linked from emails.
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	StoreURL  string
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	send      SendFunc
	fromEmail string
	fromName  string
	storeURL  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService(cfg Config) (Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required")
	}
	client := resend.NewClient(cfg.APIKey)
	return NewResendClient(func(params *resend.SendEmailRequest) error {
		_, err := client.Emails.Send(params)
		return err
	}, cfg), nil
}

// NewResendClient builds a client around an existing send function.
func NewResendClient(send SendFunc, cfg Config) *ResendClient {
	fromEmail := cfg.FromEmail
	if fromEmail == "" {
		fromEmail = "noreply@festina.com.co"
	}
	fromName := cfg.FromName
	if fromName == "" {
		fromName = "Festina"
	}
	return &ResendClient{
		send:      send,
		fromEmail: fromEmail,
		fromName:  fromName,
		storeURL:  cfg.StoreURL,
	}
}

// SendNewsletterWelcome composes and sends the newsletter welcome email.
func (c *ResendClient) SendNewsletterWelcome(toEmail string) error {
	content, err := templates.GetWelcomeEmailContent(templates.WelcomeEmailProps{
		StoreName: c.fromName,
		StoreURL:  c.storeURL,
	})
	if err != nil {
		return err
	}

	htmlContent, err := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "Bienvenido al boletín de " + c.fromName,
		Content:   content,
		StoreName: c.fromName,
		StoreURL:  c.storeURL,
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: "¡Gracias por suscribirte!",
		Html:    htmlContent,
	}

	if err := c.send(params); err != nil {
		return fmt.Errorf("failed to send welcome email via Resend: %w", err)
	}

	return nil
}
