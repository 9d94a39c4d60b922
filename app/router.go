// Package app wires shared HTTP routes for both local and Lambda execution.
package app

import (
	"time"

	"github.com/Twosense-Dev/BizBot/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Client-visible page routes; the checkout defaults point at these.
const (
	RouteLanding   = "/"
	RoutePricing   = "/pricing"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteDemo      = "/demo"
)

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func NewRouter() (*gin.Engine, error) {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	router.POST("/api/auth/login", Login)
	router.POST("/api/create-checkout-session", CreateCheckoutSession)

	verifier, err := auth.NewVerifierFromEnv()
	if err != nil {
		return nil, err
	}
	sessionVerifier = verifier

	protected := router.Group("/")
	protected.Use(auth.Middleware(verifier, auth.MiddlewareConfig{}))
	protected.GET("/api/auth/me", Me)
	protected.POST("/api/auth/logout", Logout)
	protected.GET("/api/dashboard", Dashboard)
	protected.GET("/api/prompts/qa-scenario", QAScenario)
	protected.GET("/api/prompts/negotiation-objection", NegotiationObjection)
	protected.POST("/api/features/:id/generate", GenerateFeedback)
	protected.GET("/api/responses", ListSavedResponses)
	protected.POST("/api/responses", CreateSavedResponse)
	protected.PUT("/api/responses/:id", UpdateSavedResponse)
	protected.DELETE("/api/responses/:id", DeleteSavedResponse)

	return router, nil
}
