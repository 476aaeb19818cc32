package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/services"
)

// noteGatewayResult keeps the court-gateway warning in sync with the
// outcome of the latest e-filing call.
func (s *Server) noteGatewayResult(err error) {
	if s.warnings == nil {
		return
	}
	source := s.cfg.PJUD.BaseURL
	switch {
	case errors.Is(err, gateway.ErrServerUnavailable):
		s.warnings.AddWarning(services.WarningCategoryCourtGateway,
			"El sistema judicial no está respondiendo", err.Error(), source)
	case err == nil:
		s.warnings.ClearBySource(services.WarningCategoryCourtGateway, source)
	}
}

// listDemandsHandler fetches the user's demand list from the court system.
// Court credentials arrive in headers and are relayed per call, never
// stored.
func (s *Server) listDemandsHandler(c *gin.Context) {
	creds := models.Credentials{
		RUT:      c.GetHeader("X-Court-Rut"),
		Password: c.GetHeader("X-Court-Password"),
	}
	if creds.RUT == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court credentials headers are required"})
		return
	}

	demands, err := s.pjud.ExtractDemandList(c.Request.Context(), creds)
	s.noteGatewayResult(err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"demands": demands, "count": len(demands)})
}
