package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/middleware"
)

type loginRequest struct {
	RUT      string `json:"rut" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rut and password are required"})
		return
	}

	user := s.cfg.FindUser(req.RUT)
	if user == nil || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(*user, &s.cfg.Auth)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user": gin.H{
			"rut":   user.RUT,
			"name":  user.Name,
			"group": user.Group,
		},
	})
}

func (s *Server) currentUserHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rut":   middleware.GetRUT(c),
		"name":  middleware.GetName(c),
		"group": middleware.GetGroup(c),
	})
}
