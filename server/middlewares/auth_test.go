package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	config "github.com/inference-gateway/super8/server/config"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
)

func TestNewOIDCAuthenticatorMiddleware(t *testing.T) {
	logger := zap.NewNop()

	t.Run("auth disabled returns noop", func(t *testing.T) {
		cfg := config.Config{AuthConfig: config.AuthConfig{Enable: false}}

		auth, err := NewOIDCAuthenticatorMiddleware(context.Background(), logger, cfg)
		require.NoError(t, err)
		_, ok := auth.(*OIDCAuthenticatorNoop)
		assert.True(t, ok)
	})

	t.Run("auth enabled without client secret falls back to noop", func(t *testing.T) {
		cfg := config.Config{
			AuthConfig: config.AuthConfig{
				Enable:    true,
				IssuerURL: "http://issuer.invalid",
				ClientID:  "super8",
			},
		}

		auth, err := NewOIDCAuthenticatorMiddleware(context.Background(), logger, cfg)
		require.NoError(t, err)
		_, ok := auth.(*OIDCAuthenticatorNoop)
		assert.True(t, ok)
	})
}

func TestOIDCAuthenticatorImpl_RejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &OIDCAuthenticatorImpl{logger: zap.NewNop()}

			router := gin.New()
			router.POST("/api/process", auth.Middleware(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/process", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"Missing or invalid authorization header"}`, w.Body.String())
		})
	}
}

func TestOIDCAuthenticatorNoop_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/cleanup", (&OIDCAuthenticatorNoop{}).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cleanup", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header   string
		expected string
		ok       bool
	}{
		{header: "Bearer abc.def", expected: "abc.def", ok: true},
		{header: "Bearer  padded ", expected: "padded", ok: true},
		{header: "bearer abc", ok: false},
		{header: "Bearer", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.expected, token, tt.header)
	}
}
