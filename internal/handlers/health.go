package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"storefront-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports "ok" when the store answers a ping within two
// seconds and "degraded" with a 503 otherwise.
//
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded"})
			return
		}
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}
