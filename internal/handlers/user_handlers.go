package handlers

import (
	"net/http"

	"gitinsights-api/internal/db"
	"gitinsights-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	common *CommonServices
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(common *CommonServices) *UserHandler {
	return &UserHandler{common: common}
}

// UserResponse is the standardized representation of a user record.
type UserResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Created    int64  `json:"created"`
	Updated    int64  `json:"updated"`
}

// AuthCallback records the signed-in user after an OAuth callback. The user
// row is upserted by provider identity. A store failure is logged but never
// blocks the sign-in, so the response is 200 either way.
// @Summary Record OAuth sign-in
// @Tags users
// @Produce json
// @Router /auth/callback [post]
func (h *UserHandler) AuthCallback(c *gin.Context) {
	providerID := c.GetString("providerID")
	email := c.GetString("userEmail")
	if providerID == "" {
		providerID = email
	}

	var name pgtype.Text
	if n := c.GetString("userName"); n != "" {
		name = pgtype.Text{String: n, Valid: true}
	}

	user, err := h.common.db.UpsertUser(c.Request.Context(), db.UpsertUserParams{
		ProviderID: providerID,
		Email:      email,
		Name:       name,
	})
	if err != nil {
		logger.Error("failed to upsert user on auth callback",
			zap.Error(err),
			zap.String("provider_id", providerID),
		)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": toUserResponse(user)})
}

// GetCurrentUser returns the authenticated user's account record
// @Summary Get current user
// @Tags users
// @Produce json
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.common.db.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleDBError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u db.User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		ProviderID: u.ProviderID,
		Email:      u.Email,
		Created:    u.CreatedAt.Time.Unix(),
		Updated:    u.UpdatedAt.Time.Unix(),
	}
	if u.Name.Valid {
		resp.Name = u.Name.String
	}
	return resp
}
