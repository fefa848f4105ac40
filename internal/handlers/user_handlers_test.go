package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitinsights-api/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserTestEnv(t *testing.T) *testEnv {
	env := newTestEnv(t, nil, nil)
	handler := NewUserHandler(env.common)

	protected := env.router.Group("/api/v1", asSessionUser(testUserID))
	protected.POST("/auth/callback", handler.AuthCallback)
	protected.GET("/users/me", handler.GetCurrentUser)

	return env
}

func createTestUser() db.User {
	now := time.Now()
	return db.User{
		ID:         testUserID,
		ProviderID: "github|12345",
		Email:      "dev@example.com",
		Name:       pgtype.Text{String: "Dev User", Valid: true},
		CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func TestAuthCallback(t *testing.T) {
	t.Run("upserts the user from the session claims", func(t *testing.T) {
		env := newUserTestEnv(t)
		env.querier.EXPECT().
			UpsertUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpsertUserParams) (db.User, error) {
				assert.Equal(t, "github|12345", arg.ProviderID)
				assert.Equal(t, "dev@example.com", arg.Email)
				assert.True(t, arg.Name.Valid)
				assert.Equal(t, "Dev User", arg.Name.String)
				return createTestUser(), nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Contains(t, body, "user")
	})

	t.Run("a store failure never blocks the sign-in", func(t *testing.T) {
		env := newUserTestEnv(t)
		env.querier.EXPECT().
			UpsertUser(gomock.Any(), gomock.Any()).
			Return(db.User{}, assert.AnError)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, true, body["ok"])
		assert.NotContains(t, body, "user")
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("answers the user record", func(t *testing.T) {
		env := newUserTestEnv(t)
		env.querier.EXPECT().
			GetUser(gomock.Any(), testUserID).
			Return(createTestUser(), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, "dev@example.com", body["email"])
		assert.Equal(t, "Dev User", body["name"])
	})

	t.Run("unknown user answers 404", func(t *testing.T) {
		env := newUserTestEnv(t)
		env.querier.EXPECT().
			GetUser(gomock.Any(), testUserID).
			Return(db.User{}, pgx.ErrNoRows)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
