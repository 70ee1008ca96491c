// Package services provides application-level services that orchestrate
// platform queries and domain transforms for the storefront pages.
package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
	"github.com/Kronotime-SAS/Festina/internal/domain/entities/storefront"
	"github.com/Kronotime-SAS/Festina/internal/domain/services/slides"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
)

// CatalogClient is the subset of the platform client the home page needs.
type CatalogClient interface {
	Metaobject(ctx context.Context, id string) (*metaobject.QueryResult, error)
	FeaturedCollection(ctx context.Context) (*storefront.Collection, error)
	RecommendedProducts(ctx context.Context) ([]storefront.Product, error)
}

// HomeService loads the home page: slider, featured collection and
// recommended products.
type HomeService struct {
	client       CatalogClient
	registry     *slides.Registry
	metaobjectID string
	logger       *logging.ChanneledLogger
}

// NewHomeService creates a home page service. A nil registry uses the
// default slide extractors.
func NewHomeService(client CatalogClient, registry *slides.Registry, metaobjectID string, logger *logging.ChanneledLogger) *HomeService {
	if registry == nil {
		registry = slides.NewRegistry()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &HomeService{
		client:       client,
		registry:     registry,
		metaobjectID: metaobjectID,
		logger:       logger,
	}
}

// Load fetches the critical data in parallel. A failed featured collection
// query fails the page; slider and recommendations degrade to empty.
func (s *HomeService) Load(ctx context.Context) (*storefront.HomePage, error) {
	start := time.Now()
	page := &storefront.HomePage{
		Slides:              []metaobject.Slide{},
		RecommendedProducts: []storefront.Product{},
	}

	recommended := make(chan []storefront.Product, 1)
	go func() {
		products, err := s.client.RecommendedProducts(ctx)
		if err != nil {
			s.logger.Content().Warn("Recommended products unavailable", "error", err.Error())
			products = []storefront.Product{}
		}
		recommended <- products
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		collection, err := s.client.FeaturedCollection(gctx)
		if err != nil {
			return fmt.Errorf("failed to load featured collection: %w", err)
		}
		page.FeaturedCollection = collection
		return nil
	})
	g.Go(func() error {
		page.Slides = s.loadSlides(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	select {
	case page.RecommendedProducts = <-recommended:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.logger.Content().Info("Home page loaded",
		"slides", len(page.Slides),
		"recommended", len(page.RecommendedProducts),
		"duration", time.Since(start))

	return page, nil
}

// Slides returns the slider sequence alone, empty when unavailable.
func (s *HomeService) Slides(ctx context.Context) []metaobject.Slide {
	return s.loadSlides(ctx)
}

func (s *HomeService) loadSlides(ctx context.Context) []metaobject.Slide {
	if s.metaobjectID == "" {
		s.logger.Content().Debug("No slider metaobject configured")
		return []metaobject.Slide{}
	}

	result, err := s.client.Metaobject(ctx, s.metaobjectID)
	if err != nil {
		s.logger.Content().Warn("Slider metaobject unavailable", "metaobjectId", s.metaobjectID, "error", err.Error())
		return []metaobject.Slide{}
	}

	out, err := s.registry.Extract(result)
	if err != nil {
		if slides.IsMalformed(err) {
			s.logger.Content().Error("Malformed slider metaobject", "metaobjectId", s.metaobjectID, "error", err.Error())
		} else {
			s.logger.Content().Error("Slide extraction failed", "metaobjectId", s.metaobjectID, "error", err.Error())
		}
		return []metaobject.Slide{}
	}

	s.logger.Content().Debug("Slides extracted", "metaobjectId", s.metaobjectID, "count", len(out))
	return out
}
