package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when the provided session token is invalid.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload of a session JWT issued by the identity
// layer after the OAuth sign-in. Subject carries the user ID.
type SessionClaims struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ProviderID string `json:"provider_id"`
	jwt.RegisteredClaims
}

func parseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func sessionFromRequest(c *gin.Context, secret string) (*SessionClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, ErrInvalidToken
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	return parseSessionToken(tokenString, secret)
}

func setSessionContext(c *gin.Context, claims *SessionClaims) {
	c.Set("userID", claims.Subject)
	c.Set("userEmail", claims.Email)
	c.Set("userName", claims.Name)
	c.Set("providerID", claims.ProviderID)
}

// RequireSession validates the session JWT from the Authorization header and
// sets the user identity on the request context. Requests without a valid
// session are rejected with 401.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionFromRequest(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		setSessionContext(c, claims)
		c.Next()
	}
}

// OptionalSession sets the user identity when a valid session token is
// present and lets the request through either way. Endpoints like key
// validation use it to narrow lookups to the caller's own keys.
func OptionalSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := sessionFromRequest(c, secret); err == nil {
			setSessionContext(c, claims)
		}
		c.Next()
	}
}

// ExtractAPICredential pulls the caller-supplied API key from the request:
// the x-api-key header first, then the Authorization header with an optional
// "Bearer " prefix. Returns the trimmed credential, or "" when absent.
func ExtractAPICredential(c *gin.Context) string {
	key := c.GetHeader("x-api-key")
	if key == "" {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			key = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	return strings.TrimSpace(key)
}
