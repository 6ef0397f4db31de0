package routes

import (
	"MediRecords/cache"
	"MediRecords/config"
	"MediRecords/controllers"
	"MediRecords/database"
	"MediRecords/handlers"
	"MediRecords/middlewares"
	"MediRecords/repositories"
	"MediRecords/services"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cfg *config.AppConfig, db *gorm.DB, c *cache.Cache, logger zerolog.Logger) http.Handler {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middlewares.RecoveryMiddleware(logger))
	router.Use(middlewares.LoggingMiddleware(logger))

	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	// Health and welcome routes stay reachable without a token
	controllers.SetupRootRoute(router, map[string]controllers.HealthCheck{
		"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
		"cache":    c.Ping,
	})

	router.Use(middlewares.ValidateBearerToken(cfg.GetBearerToken()))

	appointmentService := services.NewAppointmentService(
		repositories.NewAppointmentDao(db, c, logger),
		repositories.NewAppointmentRepository(db),
		logger,
	)
	billingdetailsService := services.NewBillingdetailsService(
		repositories.NewBillingdetailsDao(db, c, logger),
		repositories.NewBillingdetailsRepository(db),
		logger,
	)

	controllers.SetupPatientDetailsRoutes(
		router,
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewBillingdetailsHandler(billingdetailsService),
	)

	return router
}
