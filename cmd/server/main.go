package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"syscall"

	"event_agency_backend/internal/database"
	"event_agency_backend/internal/middleware"
	"event_agency_backend/internal/router"
	"event_agency_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// maxPortAttempts bounds the fallback to successive ports when the
// configured one is already taken.
const maxPortAttempts = 10

func main() {
	utils.InitLogger()

	// Token signing secret
	utils.InitJWT(utils.Getenv("JWT_SECRET", "change-me-in-production"))

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "agency_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "agency_password")
	dbName := utils.Getenv("DB_NAME", "agencia_eventos")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")

	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	utils.LogInfo("Database initialized", map[string]interface{}{"host": dbHost, "database": dbName})

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())
	engine.Use(middleware.Metrics())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	router.Setup(engine, database.GetDB())

	// Bind to the configured port, falling back to the next ones when taken.
	basePort := utils.GetenvInt("PORT", 3000)
	for attempt := 0; attempt < maxPortAttempts; attempt++ {
		port := basePort + attempt
		addr := fmt.Sprintf(":%d", port)

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) {
				utils.LogWarn("Port in use, trying next", map[string]interface{}{"port": port})
				continue
			}
			log.Fatalf("Failed to listen on %s: %v", addr, err)
		}

		utils.LogInfo("Server starting", map[string]interface{}{"port": port})
		if err := engine.RunListener(listener); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	log.Fatalf("No free port found after %d attempts starting at %d", maxPortAttempts, basePort)
}
