package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/storefront"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
)

// ErrAdminUnavailable is returned when no Admin API token is configured.
var ErrAdminUnavailable = errors.New("admin API not configured")

// AdminCatalogClient reads the product list through the Admin API.
type AdminCatalogClient interface {
	AdminProducts(ctx context.Context) ([]storefront.ProductSummary, error)
}

// AdminCatalogService lists products known to the store back office
type AdminCatalogService struct {
	client AdminCatalogClient
	logger *logging.ChanneledLogger
}

// NewAdminCatalogService creates the service; client may be nil.
func NewAdminCatalogService(client AdminCatalogClient, logger *logging.ChanneledLogger) *AdminCatalogService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AdminCatalogService{client: client, logger: logger}
}

// Available reports whether an Admin API client is wired.
func (s *AdminCatalogService) Available() bool {
	return s.client != nil
}

// Products returns the product summaries, ErrAdminUnavailable without a client.
func (s *AdminCatalogService) Products(ctx context.Context) ([]storefront.ProductSummary, error) {
	if s.client == nil {
		return nil, ErrAdminUnavailable
	}

	start := time.Now()
	products, err := s.client.AdminProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin products: %w", err)
	}

	s.logger.Storefront().Debug("Admin products listed", "count", len(products), "duration", time.Since(start))
	return products, nil
}
