package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kronotime-SAS/Festina/internal/infrastructure/email"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	platform "github.com/Kronotime-SAS/Festina/internal/infrastructure/storefront"
)

// NewsletterClient registers marketing consent on the platform.
type NewsletterClient interface {
	SubscribeNewsletter(ctx context.Context, email string) (string, error)
}

// SubscribeResult describes a completed sign-up.
type SubscribeResult struct {
	CustomerID        string `json:"customerId,omitempty"`
	AlreadySubscribed bool   `json:"alreadySubscribed"`
	WelcomeEmailSent  bool   `json:"welcomeEmailSent"`
}

// NewsletterService orchestrates newsletter sign-ups
type NewsletterService struct {
	client NewsletterClient
	mailer email.Service
	logger *logging.ChanneledLogger
}

// NewNewsletterService creates a newsletter service; mailer may be nil.
func NewNewsletterService(client NewsletterClient, mailer email.Service, logger *logging.ChanneledLogger) *NewsletterService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &NewsletterService{
		client: client,
		mailer: mailer,
		logger: logger,
	}
}

// Subscribe signs email up. Platform validation failures are returned as
// *platform.SubscriptionError; an address that is already registered counts
// as subscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, address string) (*SubscribeResult, error) {
	address = strings.TrimSpace(strings.ToLower(address))
	if address == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	customerID, err := s.client.SubscribeNewsletter(ctx, address)
	if err != nil {
		var subErr *platform.SubscriptionError
		if errors.As(err, &subErr) && subErr.AlreadySubscribed() {
			s.logger.Newsletter().Info("Newsletter address already registered")
			return &SubscribeResult{AlreadySubscribed: true}, nil
		}
		s.logger.Newsletter().Warn("Newsletter subscription failed", "error", err.Error())
		return nil, err
	}

	result := &SubscribeResult{CustomerID: customerID}
	if s.mailer != nil {
		if err := s.mailer.SendNewsletterWelcome(address); err != nil {
			s.logger.Newsletter().Error("Welcome email failed", "customerId", customerID, "error", err.Error())
		} else {
			result.WelcomeEmailSent = true
		}
	}

	s.logger.Newsletter().Info("Newsletter subscription completed", "customerId", customerID, "welcomeEmailSent", result.WelcomeEmailSent)
	return result, nil
}
