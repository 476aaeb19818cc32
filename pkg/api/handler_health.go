package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/database"
	"github.com/andeslegal/cobranza/pkg/version"
)

func (s *Server) healthHandler(c *gin.Context) {
	status, err := database.Health(c.Request.Context(), s.db.DB())
	if err != nil {
		slog.Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": status,
		})
		return
	}

	resp := gin.H{
		"status":      "healthy",
		"version":     version.Full(),
		"database":    status,
		"connections": s.connManager.ActiveConnections(),
	}
	if s.warnings != nil {
		if ws := s.warnings.GetWarnings(); len(ws) > 0 {
			resp["warnings"] = ws
		}
	}
	c.JSON(http.StatusOK, resp)
}
