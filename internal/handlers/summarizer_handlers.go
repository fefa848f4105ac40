package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gitinsights-api/internal/auth"
	"gitinsights-api/internal/github"
	"gitinsights-api/internal/keys"
	"gitinsights-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummarizerHandler handles README summarization endpoints.
type SummarizerHandler struct {
	common *CommonServices
}

// NewSummarizerHandler creates a new instance of SummarizerHandler.
func NewSummarizerHandler(common *CommonServices) *SummarizerHandler {
	return &SummarizerHandler{common: common}
}

// SummarizeRequest carries the repository to summarize. Both field names are
// accepted for compatibility with older clients.
type SummarizeRequest struct {
	GithubURL string `json:"githubUrl"`
	URL       string `json:"url"`
}

func (r SummarizeRequest) repoURL() string {
	if u := strings.TrimSpace(r.GithubURL); u != "" {
		return u
	}
	return strings.TrimSpace(r.URL)
}

// sendInvalid logs the error and sends an error body marked valid=false.
// Every summarizer response carries the valid flag so callers can branch on
// one field regardless of status code.
func sendInvalid(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}
	c.JSON(statusCode, gin.H{"error": message, "valid": false})
}

// Summarize meters the caller's API key, fetches the repository README and
// returns a structured summary alongside repository metadata.
// @Summary Summarize a GitHub repository
// @Tags summarizer
// @Accept json
// @Produce json
// @Router /github-summarizer [post]
func (h *SummarizerHandler) Summarize(c *gin.Context) {
	credential := auth.ExtractAPICredential(c)
	if credential == "" {
		sendInvalid(c, http.StatusBadRequest, "API key is required", nil)
		return
	}

	apiKey, err := h.common.keys.Resolve(c.Request.Context(), credential, uuid.NullUUID{})
	if err != nil {
		if errors.Is(err, keys.ErrNotFound) {
			sendInvalid(c, http.StatusUnauthorized, "Invalid API key", nil)
			return
		}
		sendInvalid(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	consumed, err := h.common.keys.CheckAndConsume(c.Request.Context(), apiKey)
	if err != nil {
		var limited *keys.RateLimitedError
		if errors.As(err, &limited) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf(
					"API key usage limit exceeded. Current usage: %d of %d requests.",
					limited.Usage, limited.Limit,
				),
				"currentUsage": limited.Usage,
				"limit":        limited.Limit,
				"valid":        false,
			})
			return
		}
		sendInvalid(c, http.StatusInternalServerError, "Failed to update API key usage", err)
		return
	}

	logger.Info("summarization request metered",
		zap.String("key_id", consumed.ID.String()),
		zap.Int32("usage", consumed.Usage),
	)

	h.summarize(c)
}

// SummarizeDemo serves the same summarization flow without requiring or
// metering an API key.
// @Summary Summarize a GitHub repository (demo)
// @Tags summarizer
// @Accept json
// @Produce json
// @Router /github-summarizer/demo [post]
func (h *SummarizerHandler) SummarizeDemo(c *gin.Context) {
	h.summarize(c)
}

func (h *SummarizerHandler) summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalid(c, http.StatusBadRequest, "GitHub URL is required", nil)
		return
	}

	repoURL := req.repoURL()
	if repoURL == "" {
		sendInvalid(c, http.StatusBadRequest, "GitHub URL is required", nil)
		return
	}

	readme, err := h.common.github.GetReadmeForURL(c.Request.Context(), repoURL)
	if err != nil {
		if errors.Is(err, github.ErrReadmeNotFound) {
			sendInvalid(c, http.StatusNotFound, "Could not fetch README content from the GitHub repository", nil)
			return
		}
		sendInvalid(c, http.StatusBadGateway, "Failed to fetch repository content", err)
		return
	}

	summary, err := h.common.summarizer.SummarizeReadme(c.Request.Context(), readme)
	if err != nil {
		sendInvalid(c, http.StatusBadGateway, "Failed to summarize repository", err)
		return
	}

	// Metadata is best effort. A partial response beats a failed one.
	repoInfo := h.common.github.GetRepoInfo(c.Request.Context(), repoURL)

	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"summary":    summary.Summary,
		"cool_facts": summary.CoolFacts,
		"repoInfo":   repoInfo,
	})
}
