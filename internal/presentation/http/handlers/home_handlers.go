// Package handlers provides HTTP handlers for the storefront pages and API
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/application/services"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/middleware"
	"github.com/Kronotime-SAS/Festina/internal/presentation/templates"
)

// HomeHandlers serves the home page and its slider
type HomeHandlers struct {
	homeService *services.HomeService
	logger      *logging.ChanneledLogger
}

// NewHomeHandlers creates home handlers with injected dependencies
func NewHomeHandlers(homeService *services.HomeService, logger *logging.ChanneledLogger) *HomeHandlers {
	return &HomeHandlers{
		homeService: homeService,
		logger:      logger,
	}
}

// GetHomePage renders the home document
func (h *HomeHandlers) GetHomePage(c *gin.Context) {
	start := time.Now()
	log := h.logger.WithRequest(logging.ChannelContent, middleware.GetRequestID(c))

	page, err := h.homeService.Load(c.Request.Context())
	if err != nil {
		log.Error("Home page load failed", "error", err.Error())
		c.String(http.StatusBadGateway, "storefront unavailable")
		return
	}

	html, err := templates.RenderHomePage(page)
	if err != nil {
		log.Error("Home page render failed", "error", err.Error())
		c.String(http.StatusInternalServerError, "render failed")
		return
	}

	log.Debug("Home page rendered", "slides", len(page.Slides), "duration", time.Since(start))
	c.Header("Cache-Control", "public, max-age=60")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetHome returns the home page payload as JSON
func (h *HomeHandlers) GetHome(c *gin.Context) {
	page, err := h.homeService.Load(c.Request.Context())
	if err != nil {
		h.logger.WithRequest(logging.ChannelContent, middleware.GetRequestID(c)).Error("Home payload load failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "storefront unavailable"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetSlides returns the slider sequence
func (h *HomeHandlers) GetSlides(c *gin.Context) {
	slides := h.homeService.Slides(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"slides": slides,
		"count":  len(slides),
	})
}
