package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gitinsights-api/internal/db"
	"gitinsights-api/internal/db/mocks"
	"gitinsights-api/internal/github"
	"gitinsights-api/internal/keys"
	"gitinsights-api/internal/logger"
	"gitinsights-api/internal/summarizer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"
)

// Test helpers and fixtures

var testUserID = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	os.Exit(m.Run())
}

// createTestKey builds a key record owned by the test user.
func createTestKey(usage int32, limit *int32) db.ApiKey {
	now := time.Now()
	key := db.ApiKey{
		ID:        uuid.New(),
		UserID:    testUserID,
		Name:      "production",
		Key:       "gi_secret_abc123",
		Value:     "gi_secret_abc123",
		Usage:     usage,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
	if limit != nil {
		key.UsageLimit = pgtype.Int4{Int32: *limit, Valid: true}
	}
	return key
}

func int32Ptr(v int32) *int32 { return &v }

// fakeSummarizer returns a canned summary or error without calling the model.
type fakeSummarizer struct {
	summary *summarizer.RepoSummary
	err     error
}

func (f *fakeSummarizer) SummarizeReadme(_ context.Context, _ string) (*summarizer.RepoSummary, error) {
	return f.summary, f.err
}

// testEnv bundles the mocked dependencies behind a ready-to-use router.
type testEnv struct {
	querier *mocks.MockQuerier
	common  *CommonServices
	router  *gin.Engine
}

func newTestEnv(t *testing.T, githubClient *github.Client, summarizerService Summarizer) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	common := NewCommonServices(querier, keys.NewService(querier), githubClient, summarizerService)
	return &testEnv{
		querier: querier,
		common:  common,
		router:  gin.New(),
	}
}

// asSessionUser simulates the session middleware for protected routes.
func asSessionUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID.String())
		c.Set("userEmail", "dev@example.com")
		c.Set("userName", "Dev User")
		c.Set("providerID", "github|12345")
		c.Next()
	}
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	return bytes.NewReader(data)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}
