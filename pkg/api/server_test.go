package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/config"
)

// TestRouterBuilds exercises the full route table; gin panics at
// registration time on conflicting paths.
func TestRouterBuilds(t *testing.T) {
	s := &Server{cfg: &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:   config.AuthConfig{JWTSecret: "router-test-secret", TokenExpireHours: 1},
	}}

	var router http.Handler
	require.NotPanics(t, func() { router = s.Router() })

	t.Run("unknown route is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("protected route rejects anonymous requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
