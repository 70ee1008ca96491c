// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/Kronotime-SAS/Festina/internal/application/services"
	"github.com/Kronotime-SAS/Festina/internal/domain/services/slides"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/email"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	platform "github.com/Kronotime-SAS/Festina/internal/infrastructure/storefront"
	"github.com/Kronotime-SAS/Festina/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services
	HomeService       *services.HomeService
	NewsletterService *services.NewsletterService
	WarmingService    *services.WarmingService
	AdminCatalog      *services.AdminCatalogService

	// Domain
	SlideRegistry *slides.Registry

	// Infrastructure
	Logger         *logging.ChanneledLogger
	AllowedOrigins []string
}

// Deps lists what New wires together.
type Deps struct {
	Logger         *logging.ChanneledLogger
	Catalog        services.CatalogClient
	Newsletter     services.NewsletterClient
	AdminCatalog   services.AdminCatalogClient
	Mailer         email.Service
	MetaobjectID   string
	AllowedOrigins []string
}

// New wires services from explicit dependencies
func New(deps Deps) *Container {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	registry := slides.NewRegistry()
	home := services.NewHomeService(deps.Catalog, registry, deps.MetaobjectID, logger)
	admin := services.NewAdminCatalogService(deps.AdminCatalog, logger)

	return &Container{
		HomeService:       home,
		NewsletterService: services.NewNewsletterService(deps.Newsletter, deps.Mailer, logger),
		WarmingService:    services.NewWarmingService(home, admin, logger),
		AdminCatalog:      admin,
		SlideRegistry:     registry,
		Logger:            logger,
		AllowedOrigins:    deps.AllowedOrigins,
	}
}

// NewContainer builds the platform client and mailer from pkg/config
func NewContainer(logger *logging.ChanneledLogger) (*Container, error) {
	client, err := platform.NewStorefrontClient(platform.Config{
		Domain:     config.StoreDomain,
		Token:      config.StorefrontAPIToken,
		APIVersion: config.StorefrontAPIVersion,
		Timeout:    config.StorefrontTimeout,
		CacheSize:  config.StorefrontCacheSize,
		ShortTTL:   config.CacheShortTTL,
		LongTTL:    config.CacheLongTTL,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storefront client: %w", err)
	}

	var adminCatalog services.AdminCatalogClient
	if config.AdminAPIToken != "" {
		adminClient, err := platform.NewAdminClient(platform.Config{
			Domain:     config.StoreDomain,
			Token:      config.AdminAPIToken,
			APIVersion: config.StorefrontAPIVersion,
			Timeout:    config.StorefrontTimeout,
			CacheSize:  config.StorefrontCacheSize,
			ShortTTL:   config.CacheShortTTL,
			LongTTL:    config.CacheLongTTL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create admin client: %w", err)
		}
		adminCatalog = adminClient
	} else {
		logger.Startup().Warn("PRIVATE_ADMIN_API_TOKEN not set, admin product listing disabled")
	}

	var mailer email.Service
	if config.ResendAPIKey != "" {
		mailer, err = email.NewService(email.Config{
			APIKey:    config.ResendAPIKey,
			FromEmail: config.NewsletterEmailFrom,
			FromName:  config.NewsletterEmailFromName,
			StoreURL:  "https://" + config.StoreDomain,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create email service: %w", err)
		}
	} else {
		logger.Startup().Warn("RESEND_API_KEY not set, newsletter welcome emails disabled")
	}

	if config.MetaobjectID == "" {
		logger.Startup().Warn("METAOBJECT_ID not set, home slider disabled")
	}

	return New(Deps{
		Logger:         logger,
		Catalog:        client,
		Newsletter:     client,
		AdminCatalog:   adminCatalog,
		Mailer:         mailer,
		MetaobjectID:   config.MetaobjectID,
		AllowedOrigins: config.CORSAllowedOrigins,
	}), nil
}
