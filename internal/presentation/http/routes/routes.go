// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/application/container"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/handlers"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(container.Logger))
	r.Use(middleware.CORSMiddleware(container.AllowedOrigins))

	homeHandlers := handlers.NewHomeHandlers(container.HomeService, container.Logger)
	newsletterHandlers := handlers.NewNewsletterHandlers(container.NewsletterService, container.Logger)
	adminHandlers := handlers.NewAdminHandlers(container.AdminCatalog, container.Logger)

	r.GET("/", homeHandlers.GetHomePage)
	r.GET("/healthz", handlers.GetHealth)

	api := r.Group("/api/v1")
	{
		api.GET("/home", homeHandlers.GetHome)
		api.GET("/slides", homeHandlers.GetSlides)
		api.POST("/newsletter", newsletterHandlers.PostSubscribe)
		api.GET("/admin/products", adminHandlers.GetProducts)
	}

	return r
}
