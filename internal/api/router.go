package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/vespulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1) behind the shared-secret gate.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp() and sit outside the auth gate.
func NewRouter(handler *Handler, apiToken string) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1", middleware.TokenAuth(apiToken))
	{
		v1.GET("/market", handler.GetMarket)
		v1.GET("/depth", handler.GetDepth)
		v1.GET("/payment-methods", handler.GetPaymentMethods)
		v1.GET("/simulate", handler.Simulate)
		v1.POST("/refresh", handler.Refresh)
	}

	return router
}
