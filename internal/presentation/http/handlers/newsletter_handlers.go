package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/application/services"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	platform "github.com/Kronotime-SAS/Festina/internal/infrastructure/storefront"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/middleware"
	"github.com/Kronotime-SAS/Festina/internal/presentation/templates"
)

// NewsletterRequest is accepted as JSON or as a posted form
type NewsletterRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// NewsletterHandlers handles newsletter sign-ups
type NewsletterHandlers struct {
	newsletterService *services.NewsletterService
	logger            *logging.ChanneledLogger
}

// NewNewsletterHandlers creates newsletter handlers with injected dependencies
func NewNewsletterHandlers(newsletterService *services.NewsletterService, logger *logging.ChanneledLogger) *NewsletterHandlers {
	return &NewsletterHandlers{
		newsletterService: newsletterService,
		logger:            logger,
	}
}

// PostSubscribe signs an email up. htmx requests get an HTML fragment.
func (h *NewsletterHandlers) PostSubscribe(c *gin.Context) {
	log := h.logger.WithRequest(logging.ChannelNewsletter, middleware.GetRequestID(c))

	var req NewsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reply(c, http.StatusBadRequest, "Ingresa un correo electrónico válido.", gin.H{"error": "invalid email", "details": err.Error()})
		return
	}

	result, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		var subErr *platform.SubscriptionError
		if errors.As(err, &subErr) {
			h.reply(c, http.StatusBadRequest, subErr.Error(), gin.H{"error": subErr.Error()})
			return
		}
		log.Error("Newsletter subscription failed", "error", err.Error())
		h.reply(c, http.StatusBadGateway, "No pudimos completar la suscripción.", gin.H{"error": "subscription failed"})
		return
	}

	h.reply(c, http.StatusOK, "", gin.H{
		"success":           true,
		"alreadySubscribed": result.AlreadySubscribed,
	})
}

func (h *NewsletterHandlers) reply(c *gin.Context, status int, message string, body gin.H) {
	if c.GetHeader("HX-Request") == "true" {
		// htmx only swaps 2xx responses
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(templates.RenderNewsletterStatus(message)))
		return
	}
	c.JSON(status, body)
}
