package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/events"
	"github.com/straye-as/pipeline-api/internal/http/handler"
	"github.com/straye-as/pipeline-api/internal/http/middleware"
	"github.com/straye-as/pipeline-api/internal/http/router"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"github.com/straye-as/pipeline-api/internal/service"
	"github.com/straye-as/pipeline-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	testAPIKey    = "router-test-api-key"
	testJWTSecret = "router-test-secret-with-at-least-32-characters"
)

func setupRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	cfg := &config.Config{
		App:       config.AppConfig{Environment: "development"},
		Auth:      config.AuthConfig{JWTSecret: testJWTSecret, APIKey: testAPIKey},
		Server:    config.ServerConfig{EnableSwagger: true},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Security:  config.SecurityConfig{ContentTypeNosniff: true},
	}

	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)
	board := pipeline.NewBoard(nil)
	coordinator := pipeline.NewCoordinator(board, leadRepo, activityRepo, pipeline.NewLogAuditSink(logger))
	leadService := service.NewLeadService(leadRepo, activityRepo, coordinator, events.NoopPublisher{},
		service.LeadServiceConfig{PersistTimeout: 5 * time.Second}, logger)
	pipelineService := service.NewPipelineService(board, leadRepo, logger)

	rt := router.NewRouter(
		cfg,
		logger,
		db,
		board,
		auth.NewMiddleware(&cfg.Auth, logger),
		middleware.NewRateLimiter(&cfg.RateLimit, logger),
		handler.NewLeadHandler(leadService, logger),
		handler.NewPipelineHandler(pipelineService, logger),
		handler.NewCompanyHandler(pipelineService, logger),
	)
	return rt.Setup(), db
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	h, _ := setupRouter(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])

	w = serve(h, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	h, _ := setupRouter(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/board", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/board", nil)
	req.Header.Set("x-api-key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/board", nil)
	req.Header.Set("Authorization", bearerToken(t))
	assert.Equal(t, http.StatusOK, serve(h, req).Code)
}

func TestRouter_RefreshIsServiceOnly(t *testing.T) {
	h, db := setupRouter(t)
	testutil.CreateTestLead(t, db, "Ana")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/refresh", nil)
	req.Header.Set("Authorization", bearerToken(t))
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/refresh", nil)
	req.Header.Set("x-api-key", testAPIKey)
	w := serve(h, req)
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed domain.BoardRefreshDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.Equal(t, 1, refreshed.Leads)
}

func TestRouter_LeadLifecycle(t *testing.T) {
	h, _ := setupRouter(t)

	body, _ := json.Marshal(domain.CreateLeadRequest{Name: "Bruno", CompanyName: "Acme"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	w := serve(h, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var lead domain.LeadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))

	body, _ = json.Marshal(domain.ChangeLeadStatusRequest{Status: domain.LeadStatusInterested})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/leads/"+lead.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	w = serve(h, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/companies/Acme", nil)
	req.Header.Set("Authorization", bearerToken(t))
	w = serve(h, req)
	require.Equal(t, http.StatusOK, w.Code)

	var company domain.CompanyDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))
	assert.Equal(t, domain.CompanyStatusMixed, company.GeneralStatus)
	require.Len(t, company.Leads, 1)
	assert.Equal(t, domain.LeadStatusInterested, company.Leads[0].Status)
}
