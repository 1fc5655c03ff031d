// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/integration/entrypoint/controller"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	salesController     *controller.SalesController
	itineraryController *controller.ItineraryController
	updatesController   *controller.UpdatesController
	directoryController *controller.DirectoryController
	expenseController   *controller.ExpenseController
	dataController      *controller.DataController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	salesController *controller.SalesController,
	itineraryController *controller.ItineraryController,
	updatesController *controller.UpdatesController,
	directoryController *controller.DirectoryController,
	expenseController *controller.ExpenseController,
	dataController *controller.DataController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		salesController:     salesController,
		itineraryController: itineraryController,
		updatesController:   updatesController,
		directoryController: directoryController,
		expenseController:   expenseController,
		dataController:      dataController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())
		{
			protected.GET("/profile", r.authController.Profile)

			protected.GET("/sales/dashboard", r.salesController.Dashboard)
			protected.GET("/sales/months", r.salesController.Months)

			protected.GET("/itinerary", r.itineraryController.Itinerary)
			protected.GET("/updates", r.updatesController.Updates)
			protected.GET("/directory", r.directoryController.Directory)

			protected.POST("/expenses", r.expenseController.Submit)
			protected.POST("/refresh-data", r.dataController.Refresh)
		}
	}
}
