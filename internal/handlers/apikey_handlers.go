package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gitinsights-api/internal/db"
	"gitinsights-api/internal/keys"
	"gitinsights-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIKeyHandler handles API key management and validation endpoints.
type APIKeyHandler struct {
	common *CommonServices
}

// NewAPIKeyHandler creates a new instance of APIKeyHandler.
func NewAPIKeyHandler(common *CommonServices) *APIKeyHandler {
	return &APIKeyHandler{common: common}
}

// APIKeyResponse is the standardized representation of a key record.
type APIKeyResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Usage       int32  `json:"usage"`
	Limit       *int32 `json:"limit"`
	Environment string `json:"environment,omitempty"`
	LastUsed    *int64 `json:"last_used,omitempty"`
	Created     int64  `json:"created"`
	Updated     int64  `json:"updated"`
}

// CreateAPIKeyRequest is the request body for creating an API key.
type CreateAPIKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value,omitempty"`
	Usage       int32  `json:"usage,omitempty"`
	Environment string `json:"environment,omitempty"`
	Limit       *int32 `json:"limit,omitempty"`
}

// UpdateAPIKeyRequest is the request body for updating an API key. Omitted
// fields keep their stored values.
type UpdateAPIKeyRequest struct {
	Name        *string `json:"name,omitempty"`
	Key         *string `json:"key,omitempty"`
	Value       *string `json:"value,omitempty"`
	Usage       *int32  `json:"usage,omitempty"`
	Environment *string `json:"environment,omitempty"`
	Limit       *int32  `json:"limit,omitempty"`
}

// ValidateAPIKeyRequest carries the credential to check. Both field names
// are accepted for compatibility with older clients.
type ValidateAPIKeyRequest struct {
	Key    string `json:"key"`
	APIKey string `json:"apiKey"`
}

// CreateAPIKey creates a new API key for the authenticated user
// @Summary Create API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Success 201 {object} APIKeyResponse
// @Router /keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and key are required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apiKey, err := h.common.keys.Create(c.Request.Context(), keys.CreateKeyParams{
		UserID:      userID,
		Name:        req.Name,
		Key:         req.Key,
		Value:       req.Value,
		Usage:       req.Usage,
		Limit:       req.Limit,
		Environment: req.Environment,
	})
	if err != nil {
		var dup *keys.DuplicateNameError
		if errors.As(err, &dup) {
			sendError(c, http.StatusConflict, "An API key with this name already exists", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create API key", err)
		return
	}

	c.JSON(http.StatusCreated, toAPIKeyResponse(apiKey))
}

// ListAPIKeys retrieves all API keys owned by the authenticated user
// @Summary List API keys
// @Tags api-keys
// @Produce json
// @Router /keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apiKeys, err := h.common.keys.List(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve API keys", err)
		return
	}

	response := make([]APIKeyResponse, len(apiKeys))
	for i, key := range apiKeys {
		response[i] = toAPIKeyResponse(key)
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   response,
	})
}

// GetAPIKeyByID retrieves a specific API key by its ID
// @Summary Get API key
// @Tags api-keys
// @Produce json
// @Router /keys/{id} [get]
func (h *APIKeyHandler) GetAPIKeyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apiKey, err := h.common.keys.Get(c.Request.Context(), id, userID)
	if err != nil {
		handleDBError(c, err, "API key not found")
		return
	}

	c.JSON(http.StatusOK, toAPIKeyResponse(apiKey))
}

// UpdateAPIKey updates an existing API key; omitted fields are preserved
// @Summary Update API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Router /keys/{id} [put]
func (h *APIKeyHandler) UpdateAPIKey(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiKey, err := h.common.keys.Update(c.Request.Context(), id, userID, keys.UpdateKeyParams{
		Name:        req.Name,
		Key:         req.Key,
		Value:       req.Value,
		Usage:       req.Usage,
		Limit:       req.Limit,
		Environment: req.Environment,
	})
	if err != nil {
		var dup *keys.DuplicateNameError
		if errors.As(err, &dup) {
			sendError(c, http.StatusConflict, "An API key with this name already exists", err)
			return
		}
		handleDBError(c, err, "API key not found")
		return
	}

	c.JSON(http.StatusOK, toAPIKeyResponse(apiKey))
}

// DeleteAPIKey removes an API key
// @Summary Delete API key
// @Tags api-keys
// @Produce json
// @Router /keys/{id} [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deleted, err := h.common.keys.Delete(c.Request.Context(), id, userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete API key", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ValidateAPIKey checks a caller-supplied credential and consumes one usage
// slot when the key is valid. An unknown or exhausted key answers 200 with
// valid=false so the check flow stays simple for callers.
// @Summary Validate API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Router /keys/validate [post]
func (h *APIKeyHandler) ValidateAPIKey(c *gin.Context) {
	var req ValidateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "API key is required", "valid": false})
		return
	}

	credential := strings.TrimSpace(req.Key)
	if credential == "" {
		credential = strings.TrimSpace(req.APIKey)
	}
	if credential == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "API key is required", "valid": false})
		return
	}

	// Scope the lookup to the caller's own keys when a session is present.
	var owner uuid.NullUUID
	if userID, err := uuid.Parse(c.GetString("userID")); err == nil {
		owner = uuid.NullUUID{UUID: userID, Valid: true}
	}

	apiKey, err := h.common.keys.Resolve(c.Request.Context(), credential, owner)
	if err != nil {
		if errors.Is(err, keys.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "message": "Invalid API key"})
			return
		}
		sendError(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	updated, err := h.common.keys.CheckAndConsume(c.Request.Context(), apiKey)
	if err != nil {
		var limited *keys.RateLimitedError
		if errors.As(err, &limited) {
			c.JSON(http.StatusOK, gin.H{
				"valid": false,
				"message": fmt.Sprintf(
					"Your API key has reached its usage limit. Current usage: %d of %d requests.",
					limited.Usage, limited.Limit,
				),
			})
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to update API key usage", err)
		return
	}

	logger.Debug("API key validated",
		zap.String("key_id", updated.ID.String()),
		zap.Int32("usage", updated.Usage),
	)

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "API key is valid",
		"key": gin.H{
			"id":   updated.ID.String(),
			"name": updated.Name,
			"key":  updated.Key,
		},
	})
}

func toAPIKeyResponse(k db.ApiKey) APIKeyResponse {
	var limit *int32
	if k.UsageLimit.Valid {
		v := k.UsageLimit.Int32
		limit = &v
	}

	var lastUsed *int64
	if k.LastUsed.Valid {
		unix := k.LastUsed.Time.Unix()
		lastUsed = &unix
	}

	return APIKeyResponse{
		ID:          k.ID.String(),
		Object:      "api_key",
		Name:        k.Name,
		Key:         k.Key,
		Value:       k.Value,
		Usage:       k.Usage,
		Limit:       limit,
		Environment: k.Environment,
		LastUsed:    lastUsed,
		Created:     k.CreatedAt.Time.Unix(),
		Updated:     k.UpdatedAt.Time.Unix(),
	}
}
