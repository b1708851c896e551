package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/container"
)

// routeRegistrar is implemented by every domain handler
type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// healthChecker is the part of PostgresDB the health endpoint needs
type healthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() (*database.PoolStats, error)
}

func SetupRouter(c *container.Container) *gin.Engine {
	return newRouter(c.Config.App.AllowedOrigin, c.Config.App.Version, c.DB, c.AuthorHandler, c.BookHandler)
}

func newRouter(allowedOrigin, version string, db healthChecker, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(allowedOrigin),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(db, version))

		for _, h := range handlers {
			h.RegisterRoutes(v1)
		}
	}

	return router
}

// ========================================
// HEALTH CHECK
// ========================================

type healthStatus struct {
	Status    string              `json:"status"`
	Version   string              `json:"version"`
	Timestamp time.Time           `json:"timestamp"`
	Database  string              `json:"database"`
	Pool      *database.PoolStats `json:"pool,omitempty"`
}

func healthCheckHandler(db healthChecker, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			response.Error(c, http.StatusServiceUnavailable, "Database unavailable", nil)
			return
		}

		status := healthStatus{
			Status:    "ok",
			Version:   version,
			Timestamp: time.Now().UTC(),
			Database:  "ok",
		}
		if stats, err := db.Stats(); err == nil {
			status.Pool = stats
		}

		response.Success(c, http.StatusOK, "Healthy", status)
	}
}
