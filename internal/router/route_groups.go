package router

import (
	"event_agency_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(authenticatedGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := authenticatedGroup.Group("/clientes")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.POST("", clientHandler.CreateClient)
	}
}

// SetupEventRoutes sets up the event routes.
func SetupEventRoutes(authenticatedGroup *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	eventRoutes := authenticatedGroup.Group("/eventos")
	{
		eventRoutes.GET("", eventHandler.GetEvents)
		eventRoutes.POST("", eventHandler.CreateEvent)
	}
}

// SetupDashboardRoutes sets up the dashboard route.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	authenticatedGroup.GET("/dashboard", dashboardHandler.GetSummary)
}
