package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{AllowedHosts: []string{"https://raffle.example"}},
		JWT:    config.JWTConfig{Secret: secret},
	}
}

func signToken(t *testing.T, key string, role string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "abc",
		"email": "ops@example.com",
		"role":  role,
		"exp":   exp.Unix(),
	}).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(cfg), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextUserEmail)})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	router := protectedRouter(testConfig())
	hour := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token abc", http.StatusUnauthorized},
		{"bad signature", "Bearer " + signToken(t, "other", "admin", hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, secret, "admin", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong role", "Bearer " + signToken(t, secret, "viewer", hour), http.StatusForbidden},
		{"admin", "Bearer " + signToken(t, secret, "admin", hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestJWTAuthMiddlewareWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""
	router := protectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "admin", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(testConfig()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://raffle.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://raffle.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("RequestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Header().Get(RequestIDHeader))
}
