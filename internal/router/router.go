package router

import (
	"database/sql"

	"event_agency_backend/internal/handlers"
	"event_agency_backend/internal/middleware"
	"event_agency_backend/internal/repositories"
	"event_agency_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup wires repositories, services and handlers and registers all routes.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	authRepo := repositories.NewAuthRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// Services
	authService := services.NewAuthService(authRepo)
	clientService := services.NewClientService(clientRepo, db)
	eventService := services.NewEventService(eventRepo, db)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	eventHandler := handlers.NewEventHandler(eventService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")

	// Login is the only route outside the auth gate.
	api.POST("/login", authHandler.Login)

	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupClientRoutes(authenticated, clientHandler)
		SetupEventRoutes(authenticated, eventHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
	}
}
