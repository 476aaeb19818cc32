package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/middleware"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-for-auth-handlers",
			TokenExpireHours: 1,
		},
		Users: []config.User{
			{RUT: "12.345.678-5", Password: "segura123", Name: "María Pérez", Group: "abogados"},
		},
	}
}

func authTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &Server{cfg: cfg}
	router := gin.New()
	router.POST("/api/v1/auth/login", s.loginHandler)
	me := router.Group("/api/v1")
	me.Use(middleware.AuthMiddleware(&cfg.Auth))
	me.GET("/auth/me", s.currentUserHandler)
	return router
}

func TestLoginHandler(t *testing.T) {
	cfg := authTestConfig()
	router := authTestRouter(cfg)

	t.Run("valid credentials return token and user", func(t *testing.T) {
		body := `{"rut":"12.345.678-5","password":"segura123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				RUT   string `json:"rut"`
				Name  string `json:"name"`
				Group string `json:"group"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "12.345.678-5", resp.User.RUT)
		assert.Equal(t, "María Pérez", resp.User.Name)
		assert.Equal(t, "abogados", resp.User.Group)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		body := `{"rut":"12.345.678-5","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown rut is rejected", func(t *testing.T) {
		body := `{"rut":"11.111.111-1","password":"segura123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"rut":"12.345.678-5"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCurrentUserHandler(t *testing.T) {
	cfg := authTestConfig()
	router := authTestRouter(cfg)

	token, _, err := middleware.GenerateToken(cfg.Users[0], &cfg.Auth)
	require.NoError(t, err)

	t.Run("returns claims of the bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "12.345.678-5", resp["rut"])
		assert.Equal(t, "María Pérez", resp["name"])
		assert.Equal(t, "abogados", resp["group"])
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
