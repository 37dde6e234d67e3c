package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/recircle/twin-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Twin read endpoints (public)
		v1.GET("/twins/:id", handler.GetTwin)
		v1.GET("/twins/:id/history", handler.GetTwinHistory)
		v1.GET("/twins", handler.ListTwins)

		// Twin lifecycle transitions (require authentication)
		v1.POST("/twins", middleware.Auth(authCfg), handler.MintTwin)
		v1.POST("/twins/:id/retire", middleware.Auth(authCfg), handler.RetireTwin)

		// Reward ledger endpoints
		v1.GET("/rewards/balances/:address", handler.GetBalance)
		v1.GET("/rewards/supply", handler.GetSupply)
		v1.POST("/rewards/transfer", middleware.Auth(authCfg), handler.TransferReward)

		// Role endpoints (grant/revoke require authentication)
		v1.GET("/roles/:role/:address", handler.CheckRole)
		v1.POST("/roles/grants", middleware.Auth(authCfg), handler.GrantRole)
		v1.DELETE("/roles/grants/:role/:address", middleware.Auth(authCfg), handler.RevokeRole)
	}
}
