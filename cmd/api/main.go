package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitinsights-api/internal/logger"
	"gitinsights-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           GitInsights API
// @version         1.0
// @description     API server for managing API keys and summarizing GitHub repositories

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session JWT.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	// Initialize logger first
	logger.InitLogger()
	defer logger.Sync()

	// Check required environment variables
	requiredEnvVars := []string{"DATABASE_URL", "SESSION_SECRET", "GEMINI_API_KEY"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("%s environment variable is required", envVar)
		}
	}

	// Initialize router
	router := gin.Default()

	// Initialize Handlers
	server.InitializeHandlers()
	defer server.Shutdown()

	// Initialize routes
	server.InitializeRoutes(router)

	// Get port from environment variable or use default
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	// Configure server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}
	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
