package handlers

import (
	"context"
	"errors"
	"net/http"

	"gitinsights-api/internal/db"
	"gitinsights-api/internal/github"
	"gitinsights-api/internal/keys"
	"gitinsights-api/internal/logger"
	"gitinsights-api/internal/summarizer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Summarizer produces a structured summary from README content.
type Summarizer interface {
	SummarizeReadme(ctx context.Context, readmeContent string) (*summarizer.RepoSummary, error)
}

// CommonServices holds the shared dependencies used across handlers.
type CommonServices struct {
	db         db.Querier
	keys       *keys.Service
	github     *github.Client
	summarizer Summarizer
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(database db.Querier, keyService *keys.Service, githubClient *github.Client, summarizerService Summarizer) *CommonServices {
	return &CommonServices{
		db:         database,
		keys:       keyService,
		github:     githubClient,
		summarizer: summarizerService,
	}
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// sendError logs the error and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleDBError maps store failures to HTTP status codes.
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, keys.ErrNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// currentUserID reads the authenticated user's ID from the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("userID"))
	if err != nil {
		sendError(c, http.StatusUnauthorized, "Invalid user identity", err)
		return uuid.UUID{}, false
	}
	return userID, true
}
