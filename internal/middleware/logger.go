package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request. Severity follows the
// response status.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = logger.Error()
		case status >= 400:
			e = logger.Warn()
		default:
			e = logger.Info()
		}

		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}

		e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("API")
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(500, gin.H{"error": "Internal Server Error"})
	})
}
