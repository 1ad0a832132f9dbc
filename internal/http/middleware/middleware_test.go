package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// =============================================================================
// Rate limiting
// =============================================================================

func TestRateLimiter_Disabled(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_LimitByIP(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
	}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
		req.RemoteAddr = "10.0.0.7:4000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			var apiErr domain.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, domain.ErrorTypeRateLimited, apiErr.Type)
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own budget
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.RemoteAddr = "10.0.0.8:4000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Whitelists(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistIPs:      []string{"127.0.0.1"},
		WhitelistPaths:    []string{"/health", "/swagger/*"},
	}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	cases := []struct {
		name   string
		path   string
		remote string
	}{
		{"whitelisted ip", "/api/v1/leads", "127.0.0.1:1"},
		{"exact path", "/health", "10.1.1.1:1"},
		{"prefix path", "/swagger/index.html", "10.1.1.2:1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				req := httptest.NewRequest(http.MethodGet, tc.path, nil)
				req.RemoteAddr = tc.remote
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				assert.Equal(t, http.StatusOK, w.Code)
			}
		})
	}
}

func TestRateLimiter_LimitByUser(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:               true,
		RequestsPerMinute:     100,
		RequestsPerMinuteAuth: 1,
	}, zap.NewNop())
	handler := rl.LimitByUser(okHandler)

	send := func(userID uuid.UUID) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/x/status", nil)
		req.RemoteAddr = "10.0.0.9:1"
		req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{UserID: userID}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	ana, bruno := uuid.New(), uuid.New()
	assert.Equal(t, http.StatusOK, send(ana))
	assert.Equal(t, http.StatusTooManyRequests, send(ana))
	assert.Equal(t, http.StatusOK, send(bruno), "same IP, different user")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", middleware.ClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", middleware.ClientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
	assert.Equal(t, "198.51.100.4", middleware.ClientIP(req))
}

// =============================================================================
// Recovery, logging, security headers, CORS
// =============================================================================

func TestRecovery(t *testing.T) {
	handler := middleware.Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("board exploded")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pipeline/board", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeInternal, apiErr.Type)
}

func TestRecovery_ResponseAlreadyStarted(t *testing.T) {
	handler := middleware.Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("id,status\n"))
		panic("export interrupted")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "id,status\n", w.Body.String())
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	handler := middleware.Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLogging_RequestID(t *testing.T) {
	var seen string
	handler := middleware.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(middleware.RequestIDHeader)
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leads", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated id")
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestSecurityHeaders(t *testing.T) {
	cfg := &config.SecurityConfig{
		EnableHSTS:            true,
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		ContentSecurityPolicy: "default-src 'self'",
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
	handler := middleware.SecurityHeaders(cfg)(okHandler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, w.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_HSTSDisabled(t *testing.T) {
	handler := middleware.SecurityHeaders(&config.SecurityConfig{})(okHandler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, w.Header().Get("X-Frame-Options"))
}

func corsPreflight(handler http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/leads", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	t.Run("explicit origins", func(t *testing.T) {
		c := *cfg
		c.AllowedOrigins = []string{"https://board.straye.io"}
		handler := middleware.CORS(&c, "production", zap.NewNop())(okHandler)

		assert.Equal(t, "https://board.straye.io",
			corsPreflight(handler, "https://board.straye.io").Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, corsPreflight(handler, "https://evil.example").Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("development reflects any origin", func(t *testing.T) {
		handler := middleware.CORS(cfg, "development", zap.NewNop())(okHandler)
		assert.Equal(t, "http://localhost:5173",
			corsPreflight(handler, "http://localhost:5173").Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production without origins denies", func(t *testing.T) {
		handler := middleware.CORS(cfg, "production", zap.NewNop())(okHandler)
		assert.Empty(t, corsPreflight(handler, "https://board.straye.io").Header().Get("Access-Control-Allow-Origin"))
	})
}
