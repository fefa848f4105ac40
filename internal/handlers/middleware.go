package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"gitinsights-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// shouldSkipLogging determines if request logging should be skipped for a given path
func shouldSkipLogging(path string) bool {
	return path == "/health" || path == "/swagger"
}

// getRequestBody safely reads and returns the request body
func getRequestBody(c *gin.Context) ([]byte, error) {
	var bodyBytes []byte
	if c.Request.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		// Restore the request body for subsequent middleware/handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}
	return bodyBytes, nil
}

// LogRequest is a middleware that logs the request body
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipLogging(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		bodyBytes, err := getRequestBody(c)
		if err != nil {
			logger.Error("Failed to read request body",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.Next()
			return
		}

		// Attempt to unmarshal body for pretty printing
		var bodyField zap.Field
		var prettyBody interface{}
		if len(bodyBytes) > 0 && json.Unmarshal(bodyBytes, &prettyBody) == nil {
			bodyField = zap.Any("body", prettyBody)
		} else {
			bodyField = zap.String("body", string(bodyBytes))
		}

		logger.Debug("Request received",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("client_ip", c.ClientIP()),
			bodyField,
			zap.Time("timestamp", start.UTC()),
		)

		c.Next()
	}
}
