package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/application/services"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/middleware"
)

// AdminHandlers exposes Admin API reads
type AdminHandlers struct {
	adminCatalog *services.AdminCatalogService
	logger       *logging.ChanneledLogger
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(adminCatalog *services.AdminCatalogService, logger *logging.ChanneledLogger) *AdminHandlers {
	return &AdminHandlers{
		adminCatalog: adminCatalog,
		logger:       logger,
	}
}

// GetProducts returns the admin product summaries
func (h *AdminHandlers) GetProducts(c *gin.Context) {
	products, err := h.adminCatalog.Products(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrAdminUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
			return
		}
		h.logger.WithRequest(logging.ChannelStorefront, middleware.GetRequestID(c)).Error("Admin product listing failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "storefront unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}
