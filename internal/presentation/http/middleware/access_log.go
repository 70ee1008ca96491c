package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
)

// AccessLogMiddleware writes one http-channel entry per request.
func AccessLogMiddleware(logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.WithRequest(logging.ChannelHTTP, GetRequestID(c))
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"clientIp", c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			log.Error("Request completed", args...)
		} else {
			log.Info("Request completed", args...)
		}
	}
}
