// Package services provides startup warming orchestration
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
)

// WarmingService primes the storefront response cache so the first home
// page request is served without waiting on the platform.
type WarmingService struct {
	home   *HomeService
	admin  *AdminCatalogService
	logger *logging.ChanneledLogger
}

// NewWarmingService creates a new warming service; admin may be nil.
func NewWarmingService(home *HomeService, admin *AdminCatalogService, logger *logging.ChanneledLogger) *WarmingService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &WarmingService{home: home, admin: admin, logger: logger}
}

// WarmAll warms the home page and, when configured, the admin product list.
// The home page error wins when both fail.
func (ws *WarmingService) WarmAll(ctx context.Context) error {
	homeErr := ws.WarmHome(ctx)
	adminErr := ws.WarmAdminCatalog(ctx)
	if homeErr != nil {
		return homeErr
	}
	return adminErr
}

// WarmAdminCatalog caches the admin product list. No-op without a token.
func (ws *WarmingService) WarmAdminCatalog(ctx context.Context) error {
	if ws.admin == nil || !ws.admin.Available() {
		return nil
	}

	start := time.Now()
	products, err := ws.admin.Products(ctx)
	if err != nil {
		ws.logger.Startup().Warn("Admin catalog warming failed", "error", err.Error(), "duration", time.Since(start))
		return fmt.Errorf("admin catalog warming failed: %w", err)
	}

	ws.logger.Startup().Info("Admin catalog cache warmed", "products", len(products), "duration", time.Since(start))
	return nil
}

// WarmHome runs the home page queries once. A failure is returned but is
// not fatal to callers; every query lazy-loads again on demand.
func (ws *WarmingService) WarmHome(ctx context.Context) error {
	start := time.Now()
	ws.logger.Startup().Info("Warming home page cache")

	page, err := ws.home.Load(ctx)
	if err != nil {
		ws.logger.Startup().Warn("Home page warming failed", "error", err.Error(), "duration", time.Since(start))
		return fmt.Errorf("home page warming failed: %w", err)
	}

	ws.logger.Startup().Info("Home page cache warmed",
		"slides", len(page.Slides),
		"recommended", len(page.RecommendedProducts),
		"duration", time.Since(start))
	return nil
}
