package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: testSecret,
		Audience:  "authenticated",
		APIKey:    "test-api-key-12345",
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(userID uuid.UUID) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   userID.String(),
		"aud":   "authenticated",
		"email": "ana@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]interface{}{
			"full_name": "Ana Silva",
		},
	}
}

// =============================================================================
// JWTValidator
// =============================================================================

func TestJWTValidator_ValidToken(t *testing.T) {
	userID := uuid.New()
	v := auth.NewJWTValidator(testAuthConfig())

	userCtx, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID)))
	require.NoError(t, err)

	assert.Equal(t, userID, userCtx.UserID)
	assert.Equal(t, "Ana Silva", userCtx.DisplayName)
	assert.Equal(t, "ana@example.com", userCtx.Email)
	assert.Equal(t, auth.RoleAuthenticated, userCtx.Role)
	assert.False(t, userCtx.IsService())
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	claims := validClaims(uuid.New())
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	v := auth.NewJWTValidator(testAuthConfig())

	_, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestJWTValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		token  func(t *testing.T) string
		config func() *config.AuthConfig
	}{
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(uuid.New()))
			},
			config: testAuthConfig,
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(uuid.New()))
			},
			config: testAuthConfig,
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				claims := validClaims(uuid.New())
				claims["aud"] = "anon"
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			config: testAuthConfig,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				claims := validClaims(uuid.New())
				claims["sub"] = "ana"
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			config: testAuthConfig,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				claims := validClaims(uuid.New())
				delete(claims, "exp")
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			config: testAuthConfig,
		},
		{
			name: "no secret configured",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(uuid.New()))
			},
			config: func() *config.AuthConfig { return &config.AuthConfig{} },
		},
		{
			name:   "garbage",
			token:  func(t *testing.T) string { return "not.a.token" },
			config: testAuthConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := auth.NewJWTValidator(tt.config())
			_, err := v.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

// =============================================================================
// Middleware
// =============================================================================

func serveAuthenticated(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *auth.UserContext) {
	t.Helper()
	m := auth.NewMiddleware(testAuthConfig(), zap.NewNop())

	var captured *auth.UserContext
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, captured
}

func TestMiddleware_Authenticate_WithAPIKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("x-api-key", "test-api-key-12345")

	w, userCtx := serveAuthenticated(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, userCtx)
	assert.Equal(t, auth.SystemUserID, userCtx.UserID)
	assert.True(t, userCtx.IsService())
}

func TestMiddleware_Authenticate_WithInvalidAPIKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("x-api-key", "wrong")

	w, userCtx := serveAuthenticated(t, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, userCtx)
}

func TestMiddleware_Authenticate_WithBearerToken(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID)))

	w, userCtx := serveAuthenticated(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, userCtx)
	assert.Equal(t, userID, userCtx.UserID)
	assert.Equal(t, "Ana Silva", userCtx.Name())
}

func TestMiddleware_Authenticate_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		w, userCtx := serveAuthenticated(t, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Nil(t, userCtx)
	}
}

func TestMiddleware_RequireService(t *testing.T) {
	m := auth.NewMiddleware(testAuthConfig(), zap.NewNop())
	handler := m.RequireService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/refresh", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{UserID: uuid.New(), Role: auth.RoleAuthenticated}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{UserID: auth.SystemUserID, Role: auth.RoleService}))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
