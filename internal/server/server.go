package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	_ "gitinsights-api/docs"
	"gitinsights-api/internal/auth"
	"gitinsights-api/internal/db"
	"gitinsights-api/internal/github"
	"gitinsights-api/internal/handlers"
	"gitinsights-api/internal/keys"
	"gitinsights-api/internal/logger"
	"gitinsights-api/internal/summarizer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	apiKeyHandler     *handlers.APIKeyHandler
	summarizerHandler *handlers.SummarizerHandler
	userHandler       *handlers.UserHandler

	// Database
	dbQueries *db.Queries

	// Session signing secret
	sessionSecret string

	summarizerService *summarizer.Service
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool
	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	sessionSecret = os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		logger.Fatal("SESSION_SECRET environment variable is required")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		logger.Fatal("GEMINI_API_KEY environment variable is required")
	}

	summarizerService, err = summarizer.NewService(context.Background(), geminiAPIKey)
	if err != nil {
		logger.Fatal("Unable to create summarizer service", zap.Error(err))
	}

	// GITHUB_TOKEN is optional; unauthenticated requests get lower rate limits
	githubClient := github.NewClient(os.Getenv("GITHUB_TOKEN"))

	keyService := keys.NewService(dbQueries)

	commonServices := handlers.NewCommonServices(
		dbQueries,
		keyService,
		githubClient,
		summarizerService,
	)

	// API Handler initialization
	apiKeyHandler = handlers.NewAPIKeyHandler(commonServices)
	summarizerHandler = handlers.NewSummarizerHandler(commonServices)
	userHandler = handlers.NewUserHandler(commonServices)
}

// Shutdown releases resources held by the handlers.
func Shutdown() {
	if summarizerService != nil {
		if err := summarizerService.Close(); err != nil {
			logger.Warn("Failed to close summarizer service", zap.Error(err))
		}
	}
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Key validation takes the credential from the request body. A
		// session narrows the lookup to the caller's own keys but is not
		// required.
		v1.POST("/keys/validate", auth.OptionalSession(sessionSecret), apiKeyHandler.ValidateAPIKey)

		// Summarization is metered by API key, not session
		v1.POST("/github-summarizer", summarizerHandler.Summarize)
		v1.POST("/github-summarizer/demo", summarizerHandler.SummarizeDemo)

		// Protected routes (session required)
		protected := v1.Group("/")
		protected.Use(auth.RequireSession(sessionSecret))
		{
			protected.POST("/auth/callback", userHandler.AuthCallback)
			protected.GET("/users/me", userHandler.GetCurrentUser)

			apiKeys := protected.Group("/keys")
			{
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.POST("", apiKeyHandler.CreateAPIKey)
				apiKeys.GET("/:id", apiKeyHandler.GetAPIKeyByID)
				apiKeys.PUT("/:id", apiKeyHandler.UpdateAPIKey)
				apiKeys.DELETE("/:id", apiKeyHandler.DeleteAPIKey)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "x-api-key"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
