package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signTestToken(t *testing.T, claims SessionClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testClaims(userID string) SessionClaims {
	return SessionClaims{
		Email:      "dev@example.com",
		Name:       "Dev User",
		ProviderID: "github|12345",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func performRequest(handler gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	handler(c)
	return w, c
}

func TestRequireSession(t *testing.T) {
	userID := uuid.New().String()

	t.Run("valid token sets identity on the context", func(t *testing.T) {
		token := signTestToken(t, testClaims(userID), testSecret)
		w, c := performRequest(RequireSession(testSecret), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, c.IsAborted())
		assert.Equal(t, userID, c.GetString("userID"))
		assert.Equal(t, "dev@example.com", c.GetString("userEmail"))
		assert.Equal(t, "Dev User", c.GetString("userName"))
		assert.Equal(t, "github|12345", c.GetString("providerID"))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w, c := performRequest(RequireSession(testSecret), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		token := signTestToken(t, testClaims(userID), "wrong-secret")
		w, c := performRequest(RequireSession(testSecret), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := testClaims(userID)
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		token := signTestToken(t, claims, testSecret)
		w, _ := performRequest(RequireSession(testSecret), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without a subject is rejected", func(t *testing.T) {
		token := signTestToken(t, testClaims(""), testSecret)
		w, _ := performRequest(RequireSession(testSecret), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalSession(t *testing.T) {
	userID := uuid.New().String()

	t.Run("valid token sets identity", func(t *testing.T) {
		token := signTestToken(t, testClaims(userID), testSecret)
		w, c := performRequest(OptionalSession(testSecret), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, c.GetString("userID"))
	})

	t.Run("missing token still passes through", func(t *testing.T) {
		w, c := performRequest(OptionalSession(testSecret), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, c.IsAborted())
		assert.Empty(t, c.GetString("userID"))
	})

	t.Run("invalid token still passes through without identity", func(t *testing.T) {
		w, c := performRequest(OptionalSession(testSecret), "Bearer not-a-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, c.IsAborted())
		assert.Empty(t, c.GetString("userID"))
	})
}

func TestExtractAPICredential(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		authHeader string
		want       string
	}{
		{name: "x-api-key header", apiKey: "gi_abc", want: "gi_abc"},
		{name: "bearer authorization header", authHeader: "Bearer gi_abc", want: "gi_abc"},
		{name: "raw authorization header", authHeader: "gi_abc", want: "gi_abc"},
		{name: "x-api-key wins over authorization", apiKey: "gi_abc", authHeader: "Bearer other", want: "gi_abc"},
		{name: "surrounding whitespace is trimmed", apiKey: "  gi_abc  ", want: "gi_abc"},
		{name: "nothing supplied", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.apiKey != "" {
				c.Request.Header.Set("x-api-key", tt.apiKey)
			}
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			assert.Equal(t, tt.want, ExtractAPICredential(c))
		})
	}
}
